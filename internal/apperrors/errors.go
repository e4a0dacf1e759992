package apperrors

// 错误码
const (
	ErrCodeOutOfRange = 1000 + iota
	ErrCodeEmptyDeck
	ErrCodeInsufficientCards
	ErrCodeNoEmptySlot
	ErrCodeNoPendingAction
	ErrCodeNotYourTurn
)

// GameError 游戏错误，前置条件不满足时由调用点返回并向上传播
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrOutOfRange        = &GameError{Code: ErrCodeOutOfRange, Message: "无效的卡槽位置"}
	ErrEmptyDeck         = &GameError{Code: ErrCodeEmptyDeck, Message: "牌叠是空的"}
	ErrInsufficientCards = &GameError{Code: ErrCodeInsufficientCards, Message: "摸牌堆的牌不够了"}
	ErrNoEmptySlot       = &GameError{Code: ErrCodeNoEmptySlot, Message: "沉睡区没有空卡槽"}
	ErrNoPendingAction   = &GameError{Code: ErrCodeNoPendingAction, Message: "当前没有待处理的动作"}
	ErrNotYourTurn       = &GameError{Code: ErrCodeNotYourTurn, Message: "还没轮到您"}
)
