package metrics

import (
	"log/slog"
	"net/http"
	"sort"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/healthtech/healthtech/pkg/vitals"
	"github.com/healthtech/healthtech/server/internal/store"
)

// Metric family names.
const (
	SubmissionsTotal = "healthtech_submissions_total"
	RemarksTotal     = "healthtech_remarks_total"
	LastHealthScore  = "healthtech_last_health_score"
	DailyTests       = "healthtech_daily_tests"
)

// remarks is the fixed label set for RemarksTotal so every remark is
// exported, even at zero.
var remarks = []string{
	vitals.RemarkExcellent,
	vitals.RemarkGood,
	vitals.RemarkAttention,
	vitals.RemarkCritical,
}

// Handler serves the Prometheus exposition for a session log.
type Handler struct {
	log *store.Log
}

// New creates a Handler that reads from log.
func New(log *store.Log) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := expfmt.NewFormat(expfmt.TypeTextPlain)
	w.Header().Set("Content-Type", string(format))

	enc := expfmt.NewEncoder(w, format)
	for _, mf := range Families(h.log) {
		if err := enc.Encode(mf); err != nil {
			slog.Error("metrics: encode family failed", "family", mf.GetName(), "err", err)
			return
		}
	}
}

// Families builds the metric families for the current state of log.
func Families(log *store.Log) []*dto.MetricFamily {
	records := log.All()

	byRemark := make(map[string]int, len(remarks))
	for _, rec := range records {
		byRemark[rec.Remark]++
	}
	remarkMetrics := make([]*dto.Metric, 0, len(remarks))
	for _, rm := range remarks {
		remarkMetrics = append(remarkMetrics, counter(float64(byRemark[rm]), label("remark", rm)))
	}

	daily := log.DailyCounts()
	dailyMetrics := make([]*dto.Metric, 0, len(daily))
	for _, d := range daily {
		dailyMetrics = append(dailyMetrics, gauge(float64(d.TotalTests), label("date", d.Date)))
	}

	out := []*dto.MetricFamily{
		family(SubmissionsTotal, "Health checks submitted this session.", dto.MetricType_COUNTER,
			counter(float64(len(records)))),
		family(RemarksTotal, "Health checks submitted this session, by remark.", dto.MetricType_COUNTER,
			remarkMetrics...),
	}
	if len(records) > 0 {
		last := records[len(records)-1]
		out = append(out, family(LastHealthScore, "Health score of the most recent check.", dto.MetricType_GAUGE,
			gauge(last.HealthScore)))
	}
	// The text format rejects families without samples.
	if len(dailyMetrics) > 0 {
		out = append(out, family(DailyTests, "Health checks submitted per calendar date.", dto.MetricType_GAUGE,
			dailyMetrics...))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].GetName() < out[j].GetName() })
	return out
}

func family(name, help string, typ dto.MetricType, metrics ...*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   typ.Enum(),
		Metric: metrics,
	}
}

func counter(v float64, labels ...*dto.LabelPair) *dto.Metric {
	return &dto.Metric{Label: labels, Counter: &dto.Counter{Value: proto.Float64(v)}}
}

func gauge(v float64, labels ...*dto.LabelPair) *dto.Metric {
	return &dto.Metric{Label: labels, Gauge: &dto.Gauge{Value: proto.Float64(v)}}
}

func label(name, value string) *dto.LabelPair {
	return &dto.LabelPair{Name: proto.String(name), Value: proto.String(value)}
}
