package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"classroom_manager/model"
)

// Storage keys. Each entry is independently settable, mirroring the
// key-per-entry layout the browser version kept in localStorage.
const (
	roomsKey          = "agmsc_rooms"
	coursesKey        = "agmsc_courses"
	attendanceBaseKey = "agmsc_attendanceBase"
	year1Key          = "agmsc_selectedYear1"
	year2Key          = "agmsc_selectedYear2"
	conferenceYearKey = "agmsc_agmscYear"
	sortColumnKey     = "agmsc_roomSortColumn"
	sortDirectionKey  = "agmsc_roomSortDirection"

	updatesChannel = "agmsc_updates"
)

// RedisStore persists the planner state to Redis, one key per entry, last
// write wins. It also carries the pubsub channel the websocket handler
// relays to connected UIs.
type RedisStore struct {
	Client *redis.Client
	Ctx    context.Context
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Load reads every entry back. ok is false when no room data exists yet,
// which is how first boot detects an empty store.
func (s *RedisStore) Load() (*model.State, bool, error) {
	raw, err := s.Client.Get(s.Ctx, roomsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load rooms: %w", err)
	}

	st := &model.State{Settings: model.DefaultSettings()}
	if err := json.Unmarshal([]byte(raw), &st.Rooms); err != nil {
		return nil, false, fmt.Errorf("corrupt room data: %w", err)
	}

	rawCourses, err := s.Client.Get(s.Ctx, coursesKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, false, fmt.Errorf("failed to load courses: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal([]byte(rawCourses), &st.Courses); err != nil {
			return nil, false, fmt.Errorf("corrupt course data: %w", err)
		}
	}

	s.loadScalar(attendanceBaseKey, &st.Settings.AttendanceBase)
	s.loadScalar(year1Key, &st.Settings.SelectedYear1)
	s.loadScalar(year2Key, &st.Settings.SelectedYear2)
	s.loadScalar(conferenceYearKey, &st.Settings.ConferenceYear)
	s.loadScalar(sortColumnKey, &st.Settings.RoomSortColumn)
	s.loadScalar(sortDirectionKey, &st.Settings.RoomSortDirection)

	return st, true, nil
}

func (s *RedisStore) loadScalar(key string, dst *string) {
	v, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return
	}
	if v != "" {
		*dst = v
	}
}

// Save writes every entry, rooms and courses as JSON arrays and the settings
// as plain strings.
func (s *RedisStore) Save(st *model.State) error {
	rooms, err := json.Marshal(st.Rooms)
	if err != nil {
		return fmt.Errorf("failed to encode rooms: %w", err)
	}
	courses, err := json.Marshal(st.Courses)
	if err != nil {
		return fmt.Errorf("failed to encode courses: %w", err)
	}

	pipe := s.Client.Pipeline()
	pipe.Set(s.Ctx, roomsKey, rooms, 0)
	pipe.Set(s.Ctx, coursesKey, courses, 0)
	pipe.Set(s.Ctx, attendanceBaseKey, st.Settings.AttendanceBase, 0)
	pipe.Set(s.Ctx, year1Key, st.Settings.SelectedYear1, 0)
	pipe.Set(s.Ctx, year2Key, st.Settings.SelectedYear2, 0)
	pipe.Set(s.Ctx, conferenceYearKey, st.Settings.ConferenceYear, 0)
	pipe.Set(s.Ctx, sortColumnKey, st.Settings.RoomSortColumn, 0)
	pipe.Set(s.Ctx, sortDirectionKey, st.Settings.RoomSortDirection, 0)

	if _, err := pipe.Exec(s.Ctx); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// SaveSnapshot stores an opaque payload under its own key (daily backups).
func (s *RedisStore) SaveSnapshot(key string, payload []byte) error {
	if err := s.Client.Set(s.Ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

// Publish notifies subscribers (the websocket relay) that state changed.
func (s *RedisStore) Publish(event string) error {
	return s.Client.Publish(s.Ctx, updatesChannel, event).Err()
}

// UpdatesChannel is the pubsub channel name the websocket handler subscribes
// to.
func UpdatesChannel() string {
	return updatesChannel
}
