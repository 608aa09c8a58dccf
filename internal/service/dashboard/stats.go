package dashboard

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// StageCount is the number of active companies sitting in one stage.
type StageCount struct {
	StageID uuid.UUID `json:"stageId"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
	Order   int       `json:"order"`
	Count   int       `json:"count"`
}

// TerminalCount is the number of companies in one terminal status.
type TerminalCount struct {
	Status domain.TerminalStatus `json:"status"`
	Count  int                   `json:"count"`
}

// AnalystLoad is the active book of one team member.
type AnalystLoad struct {
	AnalystID uuid.UUID   `json:"analystId"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	Active    int         `json:"active"`
	Overdue   int         `json:"overdue"`
}

// Personal is the caller's slice of the dashboard.
type Personal struct {
	MyActive  int `json:"myActive"`
	MyOverdue int `json:"myOverdue"`
}

// Stats is the pipeline summary. Every figure except Terminal and
// ByTerminalStatus covers active companies only.
type Stats struct {
	Total             int             `json:"total"`
	Active            int             `json:"active"`
	Terminal          int             `json:"terminal"`
	ByStage           []StageCount    `json:"byStage"`
	ByTerminalStatus  []TerminalCount `json:"byTerminalStatus"`
	Overdue           int             `json:"overdue"`
	AtRisk            int             `json:"atRisk"`
	Unassigned        int             `json:"unassigned"`
	AvgDaysInPipeline int             `json:"avgDaysInPipeline"`
	TotalFundRaise    float64         `json:"totalFundRaise"`
	Workload          []AnalystLoad   `json:"workload"`
	Personal          *Personal       `json:"personal,omitempty"`
}

// Stats loads every company and returns the pipeline summary. When the
// request carries a user id the personal block is filled in.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	snap, err := s.load(ctx, domain.ViewAll, loadSet{profiles: true})
	if err != nil {
		return nil, err
	}

	st := ComputeStats(snap.companies, snap.stages, snap.profiles, s.now(), s.thresholds)

	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		st.Personal = personal(snap.companies, userID, s.now(), s.thresholds)
	}
	return &st, nil
}

// ComputeStats is the pure projection behind Stats.
func ComputeStats(
	companies []domain.Company,
	stages []domain.PipelineStage,
	profiles []domain.Profile,
	now time.Time,
	th domain.Thresholds,
) Stats {
	st := Stats{Total: len(companies)}

	perStage := make(map[uuid.UUID]int, len(stages))
	perTerminal := make(map[domain.TerminalStatus]int, len(domain.AllTerminalStatuses))
	perAnalyst := make(map[uuid.UUID]*AnalystLoad)
	totalDays := 0

	for i := range companies {
		c := &companies[i]
		if !c.IsActive() {
			st.Terminal++
			perTerminal[*c.TerminalStatus]++
			continue
		}

		st.Active++
		days := c.DaysInPipeline(now)
		totalDays += days
		if c.TotalFundRaise != nil {
			st.TotalFundRaise += *c.TotalFundRaise
		}
		if c.PipelineStageID != nil {
			perStage[*c.PipelineStageID]++
		}

		sla := c.SLA(now, th)
		switch sla {
		case domain.SLAOverdue:
			st.Overdue++
		case domain.SLAAtRisk:
			st.AtRisk++
		}

		if c.AnalystID == nil {
			st.Unassigned++
			continue
		}
		load, ok := perAnalyst[*c.AnalystID]
		if !ok {
			load = &AnalystLoad{AnalystID: *c.AnalystID}
			perAnalyst[*c.AnalystID] = load
		}
		load.Active++
		if sla == domain.SLAOverdue {
			load.Overdue++
		}
	}

	if st.Active > 0 {
		st.AvgDaysInPipeline = int(math.Round(float64(totalDays) / float64(st.Active)))
	}

	ordered := make([]domain.PipelineStage, len(stages))
	copy(ordered, stages)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })
	st.ByStage = make([]StageCount, 0, len(ordered))
	for _, sg := range ordered {
		st.ByStage = append(st.ByStage, StageCount{
			StageID: sg.ID,
			Name:    sg.Name,
			Color:   sg.Color,
			Order:   sg.Order,
			Count:   perStage[sg.ID],
		})
	}

	st.ByTerminalStatus = make([]TerminalCount, 0, len(domain.AllTerminalStatuses))
	for _, ts := range domain.AllTerminalStatuses {
		st.ByTerminalStatus = append(st.ByTerminalStatus, TerminalCount{Status: ts, Count: perTerminal[ts]})
	}

	st.Workload = workload(perAnalyst, profiles)
	return st
}

// workload lists every analyst profile, even with an empty book, plus any
// other member holding assignments. Ordered by name.
func workload(perAnalyst map[uuid.UUID]*AnalystLoad, profiles []domain.Profile) []AnalystLoad {
	out := make([]AnalystLoad, 0, len(profiles))
	seen := make(map[uuid.UUID]bool, len(profiles))

	for i := range profiles {
		p := &profiles[i]
		load, assigned := perAnalyst[p.ID]
		if !assigned && p.Role != domain.RoleAnalyst {
			continue
		}
		row := AnalystLoad{AnalystID: p.ID, Name: p.DisplayName(), Role: p.Role}
		if assigned {
			row.Active = load.Active
			row.Overdue = load.Overdue
		}
		out = append(out, row)
		seen[p.ID] = true
	}

	// Assignments pointing at a profile that no longer exists.
	for id, load := range perAnalyst {
		if !seen[id] {
			out = append(out, *load)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].AnalystID.String() < out[j].AnalystID.String()
	})
	return out
}

func personal(companies []domain.Company, userID uuid.UUID, now time.Time, th domain.Thresholds) *Personal {
	p := &Personal{}
	for i := range companies {
		c := &companies[i]
		if !c.IsActive() || c.AnalystID == nil || *c.AnalystID != userID {
			continue
		}
		p.MyActive++
		if c.Overdue(now, th) {
			p.MyOverdue++
		}
	}
	return p
}
