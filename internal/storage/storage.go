package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"infobot/datastore"
)

const commandHistoryLimit = 20

// Storage wraps the datastore with per-guild records: recent command usage
// and the slash-definition hash cache used to skip re-registration.
type Storage struct {
	ds *datastore.DataStore
}

type CommandRecord struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	GuildName   string    `json:"guild_name"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Command     string    `json:"command"`
	Datetime    time.Time `json:"datetime"`
}

type Record struct {
	CommandsHistoryList []CommandRecord   `json:"cmd_history"`
	CommandHashes       map[string]string `json:"cmd_hashes"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// LogCommand appends a usage record for the guild, keeping only the most
// recent commandHistoryLimit entries.
func (s *Storage) LogCommand(guildID string, rec CommandRecord) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandsHistoryList = append(record.CommandsHistoryList, rec)
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}

	s.ds.Add(guildID, record)
	return nil
}

// CommandHistory returns the recent command usage records for the guild.
func (s *Storage) CommandHistory(guildID string) ([]CommandRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}

// CommandHashes returns the cached slash-definition hashes for the guild.
func (s *Storage) CommandHashes(guildID string) (map[string]string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	if record.CommandHashes == nil {
		record.CommandHashes = map[string]string{}
	}
	return record.CommandHashes, nil
}

// SetCommandHashes replaces the cached slash-definition hashes for the guild.
func (s *Storage) SetCommandHashes(guildID string, hashes map[string]string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.CommandHashes = hashes
	s.ds.Add(guildID, record)
	return nil
}

// getOrCreateGuildRecord loads the guild record, round-tripping through JSON
// because the datastore hands back whatever it unmarshalled from disk.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		record := &Record{
			CommandsHistoryList: []CommandRecord{},
			CommandHashes:       map[string]string{},
		}
		s.ds.Add(guildID, record)
		return record, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}
	return &record, nil
}
