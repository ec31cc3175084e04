package handler_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"classroom_manager/constants"
	"classroom_manager/handler"
	"classroom_manager/model"
	"classroom_manager/planner"
	"classroom_manager/router"
)

type stubStore struct {
	state *model.State
}

func (s *stubStore) Load() (*model.State, bool, error) {
	if s.state == nil {
		return nil, false, nil
	}
	return s.state, true, nil
}

func (s *stubStore) Save(st *model.State) error             { s.state = st; return nil }
func (s *stubStore) SaveSnapshot(key string, b []byte) error { return nil }
func (s *stubStore) Publish(event string) error             { return nil }

func testApp(t *testing.T) (*fiber.App, *planner.Planner) {
	t.Helper()
	p := planner.New(&stubStore{})
	if err := p.Bootstrap(); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	app := fiber.New()
	router.SetupRoutes(app, handler.New(p))
	return app, p
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestCreateRoomEndpoint(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest("POST", "/api/v1/rooms", strings.NewReader(`{"name":"Test Room","seats":45}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	body := decodeBody(t, resp.Body)
	data := body["data"].(map[string]any)
	if data["name"] != "Test Room" {
		t.Fatalf("name = %v", data["name"])
	}
	if data["seats"] != float64(45) {
		t.Fatalf("seats = %v", data["seats"])
	}
	if data["id"] == "" {
		t.Fatal("no id assigned")
	}
}

func TestCreateRoomDefaultsWithEmptyBody(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest("POST", "/api/v1/rooms", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	body := decodeBody(t, resp.Body)
	data := body["data"].(map[string]any)
	if data["name"] != "New Room" || data["seats"] != float64(30) {
		t.Fatalf("defaults = %v / %v", data["name"], data["seats"])
	}
}

func TestAssignConflictAnswers409(t *testing.T) {
	app, p := testApp(t)

	r := p.AddRoom(&model.Room{Name: "Contested", Seats: 50, Available: true, RMUStatus: model.RMUApproved})
	holder := p.AddCourse(&model.Course{Topic: "Holder", Type: model.TypeLecture})
	incoming := p.AddCourse(&model.Course{Topic: "Incoming", Type: model.TypeLecture})
	if got := p.Assign(holder.ID, r.Name); got != planner.AssignDone {
		t.Fatalf("setup assign = %v", got)
	}

	req := httptest.NewRequest("POST", "/api/v1/assignments",
		strings.NewReader(`{"courseId":"`+incoming.ID+`","roomName":"Contested"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}

	body := decodeBody(t, resp.Body)
	conflict := body["conflict"].(map[string]any)
	if conflict["heldBy"] != "Holder" || conflict["roomName"] != "Contested" {
		t.Fatalf("conflict body = %v", conflict)
	}
	if p.Conflict() == nil {
		t.Fatal("conflict not pending after 409")
	}
}

func TestAssignReportsWhichSideIsMissing(t *testing.T) {
	app, p := testApp(t)

	r := p.AddRoom(&model.Room{Name: "Open Room", Seats: 50, Available: true, RMUStatus: model.RMUApproved})
	course := p.AddCourse(&model.Course{Topic: "Orphan", Type: model.TypeLecture})

	assign := func(courseID, roomName string) map[string]any {
		t.Helper()
		req := httptest.NewRequest("POST", "/api/v1/assignments",
			strings.NewReader(`{"courseId":"`+courseID+`","roomName":"`+roomName+`"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
		return decodeBody(t, resp.Body)
	}

	if body := assign("no-such-course", r.Name); body["message"] != constants.COURSE_NOT_FOUND {
		t.Fatalf("missing course answered %q", body["message"])
	}
	if body := assign(course.ID, "No Such Room"); body["message"] != constants.ROOM_NOT_FOUND {
		t.Fatalf("missing room answered %q", body["message"])
	}
}

func TestAssignValidationRejectsMissingFields(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest("POST", "/api/v1/assignments", strings.NewReader(`{"courseId":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestImportRejectsMalformedFile(t *testing.T) {
	app, p := testApp(t)
	before := len(p.Rooms())

	req := httptest.NewRequest("POST", "/api/v1/import/file", strings.NewReader(`{"version":"1.0"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if got := len(p.Rooms()); got != before {
		t.Fatalf("failed import changed room count: %d -> %d", before, got)
	}
}

func TestExportFileSetsAttachmentHeader(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest("GET", "/api/v1/export/file?name=My%20Save", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	disposition := resp.Header.Get("Content-Disposition")
	if !strings.Contains(disposition, "my-save.json") {
		t.Fatalf("disposition = %q", disposition)
	}

	var file model.SaveFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		t.Fatalf("decode save file: %v", err)
	}
	if len(file.Rooms) != 40 || len(file.Courses) != 40 {
		t.Fatalf("export = %d rooms / %d courses", len(file.Rooms), len(file.Courses))
	}
}

func TestExportCSVHasHeaderRow(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest("GET", "/api/v1/export/csv", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	first := strings.SplitN(string(content), "\n", 2)[0]
	if !strings.Contains(first, "Topic") || !strings.Contains(first, "Assigned Room") {
		t.Fatalf("header row = %q", first)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	app, p := testApp(t)

	req := httptest.NewRequest("PATCH", "/api/v1/settings/attendance-base", strings.NewReader(`{"base":"highest"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := p.Settings().AttendanceBase; got != "highest" {
		t.Fatalf("attendance base = %q", got)
	}

	// Out-of-range base never reaches the planner.
	req = httptest.NewRequest("PATCH", "/api/v1/settings/attendance-base", strings.NewReader(`{"base":"median"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if got := p.Settings().AttendanceBase; got != "highest" {
		t.Fatalf("rejected input changed the base to %q", got)
	}
}
