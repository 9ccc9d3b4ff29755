package api_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/pkg/vitals"
	"github.com/healthtech/healthtech/server/internal/alerts"
	"github.com/healthtech/healthtech/server/internal/api"
	"github.com/healthtech/healthtech/server/internal/config"
	"github.com/healthtech/healthtech/server/internal/store"
)

// --- test helpers -----------------------------------------------------------

func newHandler(rules ...config.AlertRule) (http.Handler, *store.Log) {
	log := store.New(time.UTC)
	engine := alerts.New(config.AlertsConfig{Rules: rules})
	return api.New(api.NewSubmitter(log, engine), log, engine), log
}

func normal() types.Reading {
	return types.Reading{
		Name: "Ada", Age: 36, Gender: types.GenderFemale,
		WeightKg: 70, HeightCm: 175,
		HeartRate: 72, BloodPressure: 110, Sugar: 95, TemperatureC: 36.6, Pulse: 72,
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func post(t *testing.T, h http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/readings", &buf)
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode JSON: %v (body: %s)", err, rr.Body.String())
	}
}

// --- POST /api/v1/readings --------------------------------------------------

func TestCreateReading_AllNormal(t *testing.T) {
	h, log := newHandler()
	rr := post(t, h, normal())

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body: %s)", rr.Code, rr.Body.String())
	}
	var resp api.SubmitResponse
	decode(t, rr, &resp)

	if resp.Record.BMI != 22.86 {
		t.Errorf("bmi: got %v, want 22.86", resp.Record.BMI)
	}
	if resp.Record.HealthScore != 100 {
		t.Errorf("health_score: got %v, want 100", resp.Record.HealthScore)
	}
	if resp.Record.Remark != vitals.RemarkExcellent {
		t.Errorf("remark: got %q", resp.Record.Remark)
	}
	if resp.Record.ID == "" || resp.Record.Date == "" || resp.Record.Time == "" {
		t.Errorf("record not stamped: %+v", resp.Record)
	}
	if len(resp.Insights) != 7 {
		t.Errorf("insights: got %d lines, want 7", len(resp.Insights))
	}
	if len(resp.Chart.Bars) != 7 {
		t.Errorf("chart: got %d bars, want 7", len(resp.Chart.Bars))
	}
	if log.Len() != 1 {
		t.Errorf("log len: got %d, want 1", log.Len())
	}
}

func TestCreateReading_GoodHealth(t *testing.T) {
	h, _ := newHandler()
	r := normal()
	r.WeightKg = 120 // Obese/50
	r.HeartRate = 110

	rr := post(t, h, r)
	var resp api.SubmitResponse
	decode(t, rr, &resp)

	if resp.Record.HealthScore != 83.33 {
		t.Errorf("health_score: got %v, want 83.33", resp.Record.HealthScore)
	}
	if resp.Record.Remark != vitals.RemarkGood {
		t.Errorf("remark: got %q, want %q", resp.Record.Remark, vitals.RemarkGood)
	}
}

func TestCreateReading_ValidationFailure(t *testing.T) {
	h, log := newHandler()
	r := normal()
	r.Age = 0
	r.Gender = "Robot"
	r.HeightCm = 10
	r.TemperatureC = 5

	rr := post(t, h, r)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want 422", rr.Code)
	}
	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, rr, &resp)

	for _, f := range []string{"age", "gender", "height_cm", "temperature_c"} {
		if resp.Fields[f] == "" {
			t.Errorf("fields[%s]: missing (got %v)", f, resp.Fields)
		}
	}
	if resp.Fields["age"] != "must be at least 1" {
		t.Errorf("fields[age]: got %q", resp.Fields["age"])
	}
	if log.Len() != 0 {
		t.Errorf("log len after rejected reading: got %d, want 0", log.Len())
	}
}

func TestCreateReading_AgeAboveMax(t *testing.T) {
	h, _ := newHandler()
	r := normal()
	r.Age = 121
	rr := post(t, h, r)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want 422", rr.Code)
	}
}

func TestCreateReading_BadJSON(t *testing.T) {
	h, _ := newHandler()
	for _, body := range []string{"{", `{"name": 5}`, `{"unknown_field": 1}`} {
		rr := post(t, h, body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want 400", body, rr.Code)
		}
	}
}

func TestCreateReading_MethodNotAllowed(t *testing.T) {
	h, _ := newHandler()
	if rr := get(t, h, "/api/v1/readings"); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rr.Code)
	}
}

func TestCreateReading_FiresAlert(t *testing.T) {
	h, _ := newHandler(config.AlertRule{Name: "tachycardia", Condition: "heart_rate > 100"})
	r := normal()
	r.HeartRate = 130

	rr := post(t, h, r)
	var resp api.SubmitResponse
	decode(t, rr, &resp)
	if len(resp.Alerts) != 1 || resp.Alerts[0].RuleName != "tachycardia" {
		t.Fatalf("alerts: got %+v", resp.Alerts)
	}

	rr = get(t, h, "/api/v1/alerts")
	var recent []alerts.Alert
	decode(t, rr, &recent)
	if len(recent) != 1 {
		t.Errorf("GET alerts: got %d, want 1", len(recent))
	}
}

// --- GET endpoints ----------------------------------------------------------

func TestListRecords_InsertionOrder(t *testing.T) {
	h, _ := newHandler()
	for _, n := range []string{"first", "second", "third"} {
		r := normal()
		r.Name = n
		post(t, h, r)
	}

	rr := get(t, h, "/api/v1/records")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var recs []types.HealthRecord
	decode(t, rr, &recs)
	if len(recs) != 3 {
		t.Fatalf("records: got %d, want 3", len(recs))
	}
	for i, n := range []string{"first", "second", "third"} {
		if recs[i].Name != n {
			t.Errorf("records[%d]: got %q, want %q", i, recs[i].Name, n)
		}
	}
}

func TestListRecords_Empty(t *testing.T) {
	h, _ := newHandler()
	var recs []types.HealthRecord
	decode(t, get(t, h, "/api/v1/records"), &recs)
	if len(recs) != 0 {
		t.Errorf("records: got %d, want 0", len(recs))
	}
}

func TestRecordsCSV(t *testing.T) {
	h, _ := newHandler()
	post(t, h, normal())

	rr := get(t, h, "/api/v1/records.csv")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type: got %q", ct)
	}
	rows, err := csv.NewReader(rr.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][len(rows[0])-1] != "Remark" {
		t.Errorf("header: got %v", rows[0])
	}
	if rows[1][2] != "Ada" || rows[1][7] != "22.86" || rows[1][13] != "100" {
		t.Errorf("row: got %v", rows[1])
	}
}

func TestRecordChart(t *testing.T) {
	h, _ := newHandler()
	var created api.SubmitResponse
	decode(t, post(t, h, normal()), &created)

	rr := get(t, h, "/api/v1/records/"+created.Record.ID+"/chart")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var chart types.Chart
	decode(t, rr, &chart)
	if chart.Title != "Health Vitals & Score - Ada (Age: 36)" {
		t.Errorf("title: got %q", chart.Title)
	}
	if chart.Bars[6].Label != vitals.LabelHealthScore || chart.Bars[6].Value != 100 {
		t.Errorf("last bar: got %+v", chart.Bars[6])
	}
}

func TestRecordChart_NotFound(t *testing.T) {
	h, _ := newHandler()
	for _, p := range []string{"/api/v1/records/nope/chart", "/api/v1/records/nope", "/api/v1/records/a/b/chart"} {
		if rr := get(t, h, p); rr.Code != http.StatusNotFound {
			t.Errorf("%s: status got %d, want 404", p, rr.Code)
		}
	}
}

func TestDaily_TwoSubmissionsSameDay(t *testing.T) {
	h, _ := newHandler()
	post(t, h, normal())
	post(t, h, normal())

	var daily []types.DailyCount
	decode(t, get(t, h, "/api/v1/summary/daily"), &daily)
	if len(daily) != 1 {
		t.Fatalf("daily: got %d entries, want 1", len(daily))
	}
	if daily[0].TotalTests != 2 {
		t.Errorf("total_tests: got %d, want 2", daily[0].TotalTests)
	}
}

func TestSnapshot(t *testing.T) {
	h, _ := newHandler()
	post(t, h, normal())

	var snap map[string]interface{}
	decode(t, get(t, h, "/api/v1/snapshot"), &snap)
	if recs, ok := snap["records"].([]interface{}); !ok || len(recs) != 1 {
		t.Errorf("records: got %v", snap["records"])
	}
	if daily, ok := snap["daily"].([]interface{}); !ok || len(daily) != 1 {
		t.Errorf("daily: got %v", snap["daily"])
	}
	if snap["generated_at"] == nil || snap["generated_at"] == "" {
		t.Error("generated_at: missing")
	}
}

func TestGetEndpoints_MethodNotAllowed(t *testing.T) {
	h, _ := newHandler()
	paths := []string{
		"/api/v1/records", "/api/v1/records.csv", "/api/v1/summary/daily",
		"/api/v1/snapshot", "/api/v1/alerts", "/api/v1/records/x/chart",
	}
	for _, p := range paths {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, p, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("DELETE %s: status got %d, want 405", p, rr.Code)
		}
	}
}

// --- Submitter hooks --------------------------------------------------------

func TestSubmitter_OnRecord(t *testing.T) {
	log := store.New(time.UTC)
	sub := api.NewSubmitter(log, nil)

	var seen []string
	sub.OnRecord(func(rec types.HealthRecord) { seen = append(seen, rec.ID) })

	resp, err := sub.Submit(normal())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(seen) != 1 || seen[0] != resp.Record.ID {
		t.Errorf("hook: got %v, want [%s]", seen, resp.Record.ID)
	}

	bad := normal()
	bad.Age = 0
	if _, err := sub.Submit(bad); err == nil {
		t.Fatal("expected validation error")
	}
	if len(seen) != 1 {
		t.Errorf("hook called for a rejected reading: %v", seen)
	}
}
