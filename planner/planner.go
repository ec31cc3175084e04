package planner

import (
	"log"
	"sync"

	"classroom_manager/model"
)

// Store is the persistence boundary. The Redis implementation lives in the
// database package; tests run against an in-memory one. Every entry is
// independently settable, last write wins.
type Store interface {
	// Load returns the persisted state, or ok=false when the store holds no
	// room data yet.
	Load() (st *model.State, ok bool, err error)
	Save(st *model.State) error
	SaveSnapshot(key string, payload []byte) error
	Publish(event string) error
}

// Planner owns the whole mutable state and is the only sanctioned mutator of
// the assignment relation. The mutex serializes operations the way the
// original browser event loop did: each mutation runs to completion before
// the next one starts.
type Planner struct {
	mu    sync.Mutex
	state *model.State
	store Store
}

func New(store Store) *Planner {
	return &Planner{
		state: &model.State{Settings: model.DefaultSettings()},
		store: store,
	}
}

// Bootstrap loads persisted state, seeding the default conference inventory
// when the store is empty. The one-time migration pass and the back-reference
// sync both run here so that reads stay side-effect free afterwards.
func (p *Planner) Bootstrap() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	st, ok, err := p.store.Load()
	if err != nil {
		log.Printf("load failed, starting from seed data: %v", err)
	}
	if err != nil || !ok {
		p.state = &model.State{
			Rooms:    DefaultRooms(),
			Courses:  DefaultCourses(),
			Settings: model.DefaultSettings(),
		}
		Migrate(p.state)
		SyncAssignments(p.state)
		return p.persist()
	}

	p.state = st
	Migrate(p.state)
	SyncAssignments(p.state)
	return nil
}

// persist writes through to the store. Persistence failure is non-fatal: the
// in-memory state stays authoritative for the rest of the session.
func (p *Planner) persist() error {
	if err := p.store.Save(p.state); err != nil {
		log.Printf("persist failed: %v", err)
		return err
	}
	if err := p.store.Publish("refresh"); err != nil {
		log.Printf("publish failed: %v", err)
	}
	return nil
}

// Flush persists the current state; the autosave scheduler calls it.
func (p *Planner) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.store.Save(p.state); err != nil {
		log.Printf("autosave failed: %v", err)
	}
}

func (p *Planner) findRoom(id string) *model.Room {
	for _, r := range p.state.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (p *Planner) findRoomByName(name string) *model.Room {
	for _, r := range p.state.Rooms {
		if r.Name == name {
			return r
		}
	}
	return nil
}

func (p *Planner) findAvailableRoomByName(name string) *model.Room {
	for _, r := range p.state.Rooms {
		if r.Name == name && r.Available {
			return r
		}
	}
	return nil
}

func (p *Planner) findCourse(id string) *model.Course {
	for _, c := range p.state.Courses {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (p *Planner) findCourseByTopic(topic string) *model.Course {
	for _, c := range p.state.Courses {
		if c.Topic == topic {
			return c
		}
	}
	return nil
}

// Conflict returns the pending conflict, or nil.
func (p *Planner) Conflict() *model.Conflict {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Conflict
}

// Settings returns a copy of the current settings.
func (p *Planner) Settings() model.Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Settings
}
