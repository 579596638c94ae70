package utils

import "github.com/google/uuid"

// UUIDGenerator issues trace ids. Time-ordered v7 ids are preferred so that
// log lines sort by request start.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
