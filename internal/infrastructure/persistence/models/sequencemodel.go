package models

// SequenceCounterModel holds one monotonically increasing counter per
// (type, year) pair. Rows are only ever touched under a row lock.
type SequenceCounterModel struct {
	Type    string `gorm:"primaryKey;size:20"`
	Year    int    `gorm:"primaryKey"`
	Counter int    `gorm:"not null"`
}

func (SequenceCounterModel) TableName() string {
	return "sequence_counters"
}
