package model

// GameOwnershipModel mirrors the 'game_ids' table. The composite primary key
// makes the (user, game) pair unique at the storage level.
type GameOwnershipModel struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
	GameID int  `gorm:"primaryKey;autoIncrement:false"`
}

// TableName explicitly sets the table name for GORM.
func (GameOwnershipModel) TableName() string {
	return "game_ids"
}
