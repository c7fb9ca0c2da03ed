package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/types"
)

type fakeConsole struct {
	out      strings.Builder
	infos    []string
	warnings []string
	errors   []string
	success  []string
	bars     []string
}

func (c *fakeConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(string) types.StatusHandle         { return nopHandle{} }
func (c *fakeConsole) Progress([]string) types.ProgressHandle   { return nopHandle{} }
func (c *fakeConsole) CreateTable() types.TableInterface        { return &fakeTable{} }
func (c *fakeConsole) DisplayScenarioBars(title string, points []types.CurvePoint) {
	c.bars = append(c.bars, fmt.Sprintf("%s:%d", title, len(points)))
}

type nopHandle struct{}

func (nopHandle) Update(string) {}
func (nopHandle) Increment()    {}
func (nopHandle) Stop()         {}

type fakeTable struct {
	columns []string
	rows    [][]string
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}
func (t *fakeTable) Render() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.columns, "|") + "\n")
	for _, r := range t.rows {
		b.WriteString(strings.Join(r, "|") + "\n")
	}
	return b.String()
}

type fakeConfigRepo struct {
	cfg   *types.Config
	err   error
	saved map[string]*types.Config
}

func (r *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.cfg, nil
}

func (r *fakeConfigRepo) SaveConfigFile(path string, cfg *types.Config) error {
	if r.err != nil {
		return r.err
	}
	if r.saved == nil {
		r.saved = map[string]*types.Config{}
	}
	r.saved[path] = cfg
	return nil
}

type fakeExportRepo struct {
	calls []string
	bound entity.Bound
	fail  string
}

func (r *fakeExportRepo) record(kind, name, dir string) (string, error) {
	if kind == r.fail {
		return "", fmt.Errorf("disk full")
	}
	r.calls = append(r.calls, kind)
	return dir + "/" + name + "." + kind, nil
}

func (r *fakeExportRepo) ExportToCSV(_ *entity.DashboardResult, b entity.Bound, name, dir string) (string, error) {
	r.bound = b
	return r.record("csv", name, dir)
}
func (r *fakeExportRepo) ExportToJSON(_ *entity.DashboardResult, b entity.Bound, name, dir string) (string, error) {
	r.bound = b
	return r.record("json", name, dir)
}
func (r *fakeExportRepo) ExportToPDF(_ *entity.DashboardResult, b entity.Bound, name, dir string) (string, error) {
	r.bound = b
	return r.record("pdf", name, dir)
}
func (r *fakeExportRepo) ExportToXLSX(_ *entity.DashboardResult, b entity.Bound, name, dir string) (string, error) {
	r.bound = b
	return r.record("xlsx", name, dir)
}
func (r *fakeExportRepo) ExportScorecardToCSV(_ entity.Scorecard, name, dir string) (string, error) {
	return r.record("scorecard.csv", name, dir)
}
func (r *fakeExportRepo) ExportScorecardToJSON(_ entity.Scorecard, name, dir string) (string, error) {
	return r.record("scorecard.json", name, dir)
}

type fakePublishRepo struct {
	target types.PublishConfig
	runID  string
	files  []string
	err    error
}

func (r *fakePublishRepo) GetAWSProfiles() []string { return []string{"default"} }
func (r *fakePublishRepo) GetAccountID(context.Context, string, string) (string, error) {
	return "123456789012", nil
}
func (r *fakePublishRepo) Publish(_ context.Context, target types.PublishConfig, runID string, files []string) ([]string, error) {
	r.target, r.runID, r.files = target, runID, files
	if r.err != nil {
		return nil, r.err
	}
	uris := make([]string, len(files))
	for i, f := range files {
		uris[i] = "s3://" + target.Bucket + "/" + f
	}
	return uris, nil
}

type fakeReferenceRepo struct {
	card  entity.Scorecard
	names []string
	err   error
}

func (r *fakeReferenceRepo) LoadScorecard(_, sheet string) (entity.Scorecard, error) {
	if r.err != nil {
		return entity.Scorecard{}, r.err
	}
	card := r.card
	card.Sheet = sheet
	return card, nil
}

func (r *fakeReferenceRepo) LoadRegionNames(context.Context, string) ([]string, error) {
	return r.names, nil
}
