package planner

import "classroom_manager/model"

// SyncAssignments rebuilds every room's back-reference from the courses'
// forward references. Persisted and imported data carry only the forward
// side as source of truth, so this must run after any bulk replacement.
// Availability flags are user state and are left untouched. When two courses
// name the same room the later one in course order wins.
func SyncAssignments(st *model.State) {
	for _, r := range st.Rooms {
		r.AssignedTo = nil
	}
	for _, c := range st.Courses {
		if c.AssignedRoom == nil {
			continue
		}
		for _, r := range st.Rooms {
			if r.Name == *c.AssignedRoom {
				topic := c.Topic
				r.AssignedTo = &topic
			}
		}
	}
}

// Sync re-derives the back-references on the live state.
func (p *Planner) Sync() {
	p.mu.Lock()
	defer p.mu.Unlock()
	SyncAssignments(p.state)
	p.persist()
}
