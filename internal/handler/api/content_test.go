// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

// serve sends a request through the full route tree.
func serve(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = newJSONRequest(t, method, path, body)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStatus(t *testing.T) {
	_, h := testSetup(t)

	w := serve(t, testRouter(h), http.MethodGet, "/api/v1/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := unmarshalData[StatusResponse](t, w); got.Status != "ok" || got.Version != "v1" {
		t.Errorf("status = %+v", got)
	}
}

func TestRoutes_CreateListGet(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"headers", "/api/v1/headers", `{"name":"Jane","description":"Engineer"}`},
		{"introductions", "/api/v1/introductions", `{"header":"Hi","description":"About me","title":"Hello"}`},
		{"projects", "/api/v1/projects", `{"image":"storage:abc","cardTitle":"T","cardDescription":"D","tag":"go","githubLink":"https://github.com/x/y","createdAt":"2024-01-01T00:00:00Z"}`},
		{"project details", "/api/v1/project-details", `{"title":"T","header":"H","description":"D"}`},
		{"work experiences", "/api/v1/work-experiences", `{"icon":"storage:icon","workplace":"Acme","workTitle":"Dev","description":"a\nb","startDate":"2020-01-01T00:00:00Z","isCurrentJob":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := testSetup(t)
			router := testRouter(h)

			w := serve(t, router, http.MethodPost, tt.path, tt.body)
			if w.Code != http.StatusCreated {
				t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
			}
			id := unmarshalData[CreatedResponse](t, w).ID

			w = serve(t, router, http.MethodGet, tt.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("list: status = %d", w.Code)
			}
			items, meta := unmarshalList[map[string]any](t, w)
			if len(items) != 1 || items[0]["_id"] != id {
				t.Errorf("list = %v, want one record with id %s", items, id)
			}
			if meta == nil || meta.Total != 1 {
				t.Errorf("meta = %+v, want total 1", meta)
			}

			w = serve(t, router, http.MethodGet, tt.path+"/"+id, "")
			if w.Code != http.StatusOK {
				t.Fatalf("get: status = %d", w.Code)
			}
			if got := unmarshalData[map[string]any](t, w); got["_id"] != id || got["_creationTime"] == nil {
				t.Errorf("get = %v", got)
			}

			w = serve(t, router, http.MethodGet, tt.path+"/00000000-0000-0000-0000-000000000000", "")
			if w.Code != http.StatusNotFound {
				t.Errorf("get missing: status = %d, want %d", w.Code, http.StatusNotFound)
			}

			w = serve(t, router, http.MethodPost, tt.path, `{}`)
			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("create empty: status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
			}
		})
	}
}

func TestCreateProject_OptionalFields(t *testing.T) {
	_, h := testSetup(t)

	withLink := createViaAPI(t, h.CreateProject, "/api/v1/projects",
		`{"image":"i","cardTitle":"T","cardDescription":"D","tag":"go","githubLink":"g","websiteLink":"https://example.com","createdAt":"2024-01-01T00:00:00Z"}`)
	withoutLink := createViaAPI(t, h.CreateProject, "/api/v1/projects",
		`{"image":"i","cardTitle":"T","cardDescription":"D","tag":"go","githubLink":"g","createdAt":"2024-01-01T00:00:00Z"}`)

	w := executeHandler(t, h.GetProject, newGetRequest(t, "/", map[string]string{"id": withLink}))
	p := unmarshalData[model.Project](t, w)
	if p.WebsiteLink == nil || *p.WebsiteLink != "https://example.com" {
		t.Errorf("WebsiteLink = %v, want https://example.com", p.WebsiteLink)
	}
	if !p.CreatedAt.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", p.CreatedAt)
	}

	w = executeHandler(t, h.GetProject, newGetRequest(t, "/", map[string]string{"id": withoutLink}))
	if strings.Contains(w.Body.String(), "websiteLink") {
		t.Errorf("absent websiteLink should be omitted: %s", w.Body.String())
	}
}

func TestCreateProject_MissingCreatedAt(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(t, h.CreateProject, newJSONRequest(t, http.MethodPost, "/api/v1/projects",
		`{"image":"i","cardTitle":"T","cardDescription":"D","tag":"go","githubLink":"g"}`))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	if e := unmarshalError(t, w); e.Details["createdAt"] == "" {
		t.Errorf("details = %v, want createdAt", e.Details)
	}
}

func TestCreateIntroduction_MissingTitle(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(t, h.CreateIntroduction, newJSONRequest(t, http.MethodPost, "/api/v1/introductions",
		`{"header":"Hi","description":"About me"}`))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	if e := unmarshalError(t, w); e.Details["title"] == "" {
		t.Errorf("details = %v, want title", e.Details)
	}
}

func TestWorkExperience_Bullets(t *testing.T) {
	_, h := testSetup(t)

	id := createViaAPI(t, h.CreateWorkExperience, "/api/v1/work-experiences",
		`{"icon":"i","workplace":"Acme","workTitle":"Dev","description":"Built things\n\n  Shipped things ","startDate":"2020-01-01T00:00:00Z","endDate":"2022-06-30T00:00:00Z","isCurrentJob":false}`)

	w := executeHandler(t, h.GetWorkExperience, newGetRequest(t, "/", map[string]string{"id": id}))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var got struct {
		Data struct {
			ID           string     `json:"_id"`
			IsCurrentJob bool       `json:"isCurrentJob"`
			EndDate      *time.Time `json:"endDate"`
			Bullets      []string   `json:"bullets"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Data.ID != id {
		t.Errorf("ID = %q, want %q", got.Data.ID, id)
	}
	if got.Data.IsCurrentJob {
		t.Error("IsCurrentJob = true, want false")
	}
	if got.Data.EndDate == nil {
		t.Error("EndDate should be set")
	}
	want := []string{"Built things", "Shipped things"}
	if len(got.Data.Bullets) != len(want) || got.Data.Bullets[0] != want[0] || got.Data.Bullets[1] != want[1] {
		t.Errorf("Bullets = %q, want %q", got.Data.Bullets, want)
	}
}

func TestWorkExperience_MissingIsCurrentJob(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(t, h.CreateWorkExperience, newJSONRequest(t, http.MethodPost, "/api/v1/work-experiences",
		`{"icon":"i","workplace":"Acme","workTitle":"Dev","description":"d","startDate":"2020-01-01T00:00:00Z"}`))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	if e := unmarshalError(t, w); e.Details["isCurrentJob"] == "" {
		t.Errorf("details = %v, want isCurrentJob", e.Details)
	}
}

func TestListWorkExperiences_StoreFailure(t *testing.T) {
	db, h := testSetup(t)
	_ = db.Close()

	w := executeHandler(t, h.ListWorkExperiences, newGetRequest(t, "/api/v1/work-experiences", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestProjectDetails_NewestFirst(t *testing.T) {
	_, h := testSetup(t)

	first := createViaAPI(t, h.CreateProjectDetail, "/api/v1/project-details", `{"title":"1","header":"h","description":"d"}`)
	second := createViaAPI(t, h.CreateProjectDetail, "/api/v1/project-details", `{"title":"2","header":"h","description":"d"}`)

	w := executeHandler(t, h.ListProjectDetails, newGetRequest(t, "/api/v1/project-details", nil))
	items, _ := unmarshalList[model.ProjectDetail](t, w)
	if len(items) != 2 || items[0].ID != second || items[1].ID != first {
		t.Errorf("items = %+v, want [%s %s]", items, second, first)
	}
}

func TestRoutes_OffsetTimestampsOnProductionDriver(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{
			"projects", "/api/v1/projects",
			`{"image":"i","cardTitle":"T","cardDescription":"D","tag":"go","githubLink":"g","createdAt":"2024-03-04T05:06:07+05:30","updatedAt":"2024-03-05T05:06:07-07:00"}`,
		},
		{
			"work experiences", "/api/v1/work-experiences",
			`{"icon":"i","workplace":"Acme","workTitle":"Dev","description":"d","startDate":"2020-01-01T09:00:00+05:30","endDate":"2022-06-30T17:00:00-07:00","isCurrentJob":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := testSetupFileDB(t)
			router := testRouter(h)

			// A UTC record first, so a broken row would also break the list.
			utcBody := strings.NewReplacer("+05:30", "Z", "-07:00", "Z").Replace(tt.body)
			if w := serve(t, router, http.MethodPost, tt.path, utcBody); w.Code != http.StatusCreated {
				t.Fatalf("create utc: status = %d, body = %s", w.Code, w.Body.String())
			}

			w := serve(t, router, http.MethodPost, tt.path, tt.body)
			if w.Code != http.StatusCreated {
				t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
			}
			id := unmarshalData[CreatedResponse](t, w).ID

			w = serve(t, router, http.MethodGet, tt.path+"/"+id, "")
			if w.Code != http.StatusOK {
				t.Fatalf("get: status = %d, body = %s", w.Code, w.Body.String())
			}

			w = serve(t, router, http.MethodGet, tt.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("list: status = %d, body = %s", w.Code, w.Body.String())
			}
			items, meta := unmarshalList[map[string]any](t, w)
			if len(items) != 2 || items[0]["_id"] != id {
				t.Errorf("list = %v, want newest record %s first", items, id)
			}
			if meta == nil || meta.Total != 2 {
				t.Errorf("meta = %+v, want total 2", meta)
			}
		})
	}
}

func TestGetProject_OffsetCreatedAtPreservesInstant(t *testing.T) {
	_, h := testSetupFileDB(t)

	id := createViaAPI(t, h.CreateProject, "/api/v1/projects",
		`{"image":"i","cardTitle":"T","cardDescription":"D","tag":"go","githubLink":"g","createdAt":"2024-03-04T05:06:07+05:30"}`)

	w := executeHandler(t, h.GetProject, newGetRequest(t, "/", map[string]string{"id": id}))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	p := unmarshalData[model.Project](t, w)
	if want := time.Date(2024, 3, 3, 23, 36, 7, 0, time.UTC); !p.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", p.CreatedAt, want)
	}
}
