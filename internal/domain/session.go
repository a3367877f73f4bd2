package domain

import (
	"fmt"
	"strconv"
)

// SessionID identifies an authenticated game session. Zero means no session.
type SessionID uint64

const NoSession SessionID = 0

func (id SessionID) Valid() bool {
	return id != NoSession
}

func (id SessionID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func ParseSessionID(raw string) (SessionID, error) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return NoSession, fmt.Errorf("parse session id %q: %w", raw, err)
	}

	return SessionID(value), nil
}

type Character struct {
	Name                 string
	WorldName            string
	ClassJobAbbreviation string
	Level                int
}

// SessionRecord is the on-disk shape of a login. Field names are part of the
// file format read by external tools.
type SessionRecord struct {
	Pid                  int       `json:"Pid"`
	ContentId            SessionID `json:"ContentId"`
	CharacterName        *string   `json:"CharacterName"`
	WorldName            *string   `json:"WorldName"`
	ClassJobAbbreviation *string   `json:"ClassJobAbbreviation"`
	Level                int       `json:"Level"`
}

func NewSessionRecord(pid int, id SessionID, character *Character) SessionRecord {
	record := SessionRecord{Pid: pid, ContentId: id}
	if character == nil {
		return record
	}

	record.CharacterName = optional(character.Name)
	record.WorldName = optional(character.WorldName)
	record.ClassJobAbbreviation = optional(character.ClassJobAbbreviation)
	record.Level = character.Level

	return record
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

type LogoutEvent struct {
	Type int
	Code int
}
