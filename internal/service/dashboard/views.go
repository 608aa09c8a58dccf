package dashboard

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// Row is one table line: the company plus its derived SLA fields.
type Row struct {
	domain.Company
	DaysInPipeline int              `json:"daysInPipeline"`
	SLAStatus      domain.SLAStatus `json:"slaStatus"`
}

// Table returns the filtered and sorted company table. ScopeAdmin searches
// terminal companies as well; the other scopes see active companies only.
func (s *Service) Table(ctx context.Context, q Query) ([]Row, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	view := domain.ViewActive
	if q.Scope == ScopeAdmin {
		view = domain.ViewAll
	}

	snap, err := s.load(ctx, view, loadSet{industries: true})
	if err != nil {
		return nil, err
	}

	now := s.now()
	matched := Filter(snap.companies, snap.industries, q)
	Sort(matched, q.Sort, q.Desc, now)

	rows := make([]Row, len(matched))
	for i := range matched {
		rows[i] = Row{
			Company:        matched[i],
			DaysInPipeline: matched[i].DaysInPipeline(now),
			SLAStatus:      matched[i].SLA(now, s.thresholds),
		}
	}

	s.log.DebugContext(ctx, "table built",
		slog.String("scope", string(q.Scope)),
		slog.Int("rows", len(rows)),
	)
	return rows, nil
}

// Column is one board lane.
type Column struct {
	Stage     domain.PipelineStage `json:"stage"`
	Companies []Row                `json:"companies"`
	Count     int                  `json:"count"`
}

// Board groups active companies by stage in stage order. Every stage gets a
// column, empty or not. Companies whose stage is unknown are dropped.
func (s *Service) Board(ctx context.Context, q Query) ([]Column, error) {
	q.Scope = ScopeBoard
	if err := q.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.load(ctx, domain.ViewActive, loadSet{industries: true})
	if err != nil {
		return nil, err
	}

	now := s.now()
	matched := Filter(snap.companies, snap.industries, q)
	Sort(matched, q.Sort, q.Desc, now)
	return BuildBoard(snap.stages, matched, now, s.thresholds), nil
}

// BuildBoard lays companies out into stage columns. Input order is kept
// inside each column.
func BuildBoard(stages []domain.PipelineStage, companies []domain.Company, now time.Time, th domain.Thresholds) []Column {
	ordered := make([]domain.PipelineStage, len(stages))
	copy(ordered, stages)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	cols := make([]Column, len(ordered))
	index := make(map[uuid.UUID]int, len(ordered))
	for i, sg := range ordered {
		cols[i] = Column{Stage: sg, Companies: []Row{}}
		index[sg.ID] = i
	}

	for i := range companies {
		c := &companies[i]
		if !c.IsActive() || c.PipelineStageID == nil {
			continue
		}
		at, ok := index[*c.PipelineStageID]
		if !ok {
			continue
		}
		cols[at].Companies = append(cols[at].Companies, Row{
			Company:        *c,
			DaysInPipeline: c.DaysInPipeline(now),
			SLAStatus:      c.SLA(now, th),
		})
	}
	for i := range cols {
		cols[i].Count = len(cols[i].Companies)
	}
	return cols
}
