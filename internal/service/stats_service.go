package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/kleurenwiezen/internal/calculator"
	"github.com/mmynk/kleurenwiezen/internal/storage"
	pb "github.com/mmynk/kleurenwiezen/pkg/proto"
	"github.com/mmynk/kleurenwiezen/pkg/proto/protoconnect"
)

var _ protoconnect.StatsServiceHandler = (*StatsService)(nil)

// StatsService serves the group-wide overview.
type StatsService struct {
	store storage.Store
}

func NewStatsService(store storage.Store) *StatsService {
	return &StatsService{store: store}
}

// GetOverview returns totals, bid counts and the per-session cumulative
// series across every session of the group.
func (s *StatsService) GetOverview(ctx context.Context, req *connect.Request[pb.GetOverviewRequest]) (*connect.Response[pb.GetOverviewResponse], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}

	data, err := loadGroupData(ctx, s.store, groupID)
	if err != nil {
		slog.Error("GetOverview failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	ov := data.overview()
	bidCounts := make([]*pb.BidCount, 0, len(ov.BidCounts))
	for _, b := range calculator.Bids() {
		bidCounts = append(bidCounts, &pb.BidCount{Bid: string(b.Kind), Label: b.Label, Count: int32(ov.BidCounts[b.Kind])})
	}

	slog.Info("GetOverview successful",
		"group_id", groupID,
		"sessions", len(data.sessions),
		"rounds", ov.RoundCount,
	)

	return connect.NewResponse(&pb.GetOverviewResponse{
		Totals:     toProtoTotals(data.players, ov.Totals),
		RoundCount: int32(ov.RoundCount),
		BidCounts:  bidCounts,
		Sessions:   data.summaries(ov),
		Chart:      toProtoChart(data.sessionChart(ov), playerNames(data.players)),
	}), nil
}

// ListBids returns the bid catalog in display order.
func (s *StatsService) ListBids(ctx context.Context, req *connect.Request[pb.ListBidsRequest]) (*connect.Response[pb.ListBidsResponse], error) {
	bids := calculator.Bids()
	out := make([]*pb.BidInfo, len(bids))
	for i, b := range bids {
		out[i] = &pb.BidInfo{
			Kind:          string(b.Kind),
			Label:         b.Label,
			MinWinners:    int32(b.MinWinners),
			MaxWinners:    int32(b.MaxWinners),
			HasOvertricks: b.Class == calculator.ClassFormula,
		}
	}
	return connect.NewResponse(&pb.ListBidsResponse{Bids: out}), nil
}
