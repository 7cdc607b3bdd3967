package entity

// GameOwnership records that a user owns a game. The (UserID, GameID) pair is
// unique; there is no lifecycle beyond create and delete.
type GameOwnership struct {
	UserID uint
	GameID int
}
