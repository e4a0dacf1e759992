package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/palemoky/sleeping-coders/internal/apperrors"
)

// Deck 一叠有序的卡牌。索引 0 是牌底，最后一个索引是牌顶（最近加入的一张）。
type Deck struct {
	cards []Card
}

// NewDeck 创建一个牌叠，可以带初始卡牌
func NewDeck(cards ...Card) *Deck {
	return &Deck{cards: cards}
}

// GetCards 返回牌叠内部的卡牌序列。返回的是活引用而非副本。
func (d *Deck) GetCards() []Card {
	return d.cards
}

// GetCard 返回指定卡槽处的卡牌
func (d *Deck) GetCard(slot int) (Card, error) {
	if slot < 0 || slot >= len(d.cards) {
		return nil, apperrors.ErrOutOfRange
	}
	return d.cards[slot], nil
}

// Top 返回牌顶的卡牌，即最近加入的一张
func (d *Deck) Top() (Card, error) {
	if len(d.cards) == 0 {
		return nil, apperrors.ErrEmptyDeck
	}
	return d.cards[len(d.cards)-1], nil
}

// RemoveCard 移除指定卡槽处的卡牌，之后的卡槽索引依次前移一位
func (d *Deck) RemoveCard(slot int) error {
	if slot < 0 || slot >= len(d.cards) {
		return apperrors.ErrOutOfRange
	}
	d.cards = append(d.cards[:slot], d.cards[slot+1:]...)
	return nil
}

// GetAmount 返回牌叠中的卡牌数量
func (d *Deck) GetAmount() int {
	return len(d.cards)
}

// Shuffle 原地均匀洗牌
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Pick 从牌顶取走 amount 张卡牌，按取出顺序返回（最近加入的在最前）。
// 牌不够时整体失败，牌叠保持原样，不做部分移除。
func (d *Deck) Pick(amount int) ([]Card, error) {
	if amount < 0 || amount > len(d.cards) {
		return nil, apperrors.ErrInsufficientCards
	}
	picked := make([]Card, 0, amount)
	for i := 0; i < amount; i++ {
		picked = append(picked, d.cards[len(d.cards)-1])
		d.cards = d.cards[:len(d.cards)-1]
	}
	return picked, nil
}

// AddCard 将一张卡牌放到牌顶
func (d *Deck) AddCard(c Card) {
	d.cards = append(d.cards, c)
}

// AddCards 将一组卡牌按原有相对顺序放到牌顶，等价于逐张 AddCard
func (d *Deck) AddCards(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// Copy 将 other 的卡牌追加到当前牌叠。卡牌按引用共享，
// other 保留自己的卡牌，这不是移动。
func (d *Deck) Copy(other *Deck) {
	d.AddCards(other.GetCards())
}

func (d *Deck) String() string {
	names := make([]string, 0, len(d.cards))
	for _, c := range d.cards {
		names = append(names, c.String())
	}
	return fmt.Sprintf("Deck(%s)", strings.Join(names, ", "))
}
