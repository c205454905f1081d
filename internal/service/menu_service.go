package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/christoffel/menuapp/internal/menu"
	"github.com/christoffel/menuapp/internal/storage"
	pb "github.com/christoffel/menuapp/pkg/proto"
	"github.com/christoffel/menuapp/pkg/proto/protoconnect"
)

// MenuService implements the Connect MenuService. It serves the aggregated
// read-only view of the menu without requiring a session.
type MenuService struct {
	protoconnect.UnimplementedMenuServiceHandler
	store storage.Store
}

// NewMenuService creates a new MenuService with the given storage backend.
func NewMenuService(store storage.Store) *MenuService {
	return &MenuService{store: store}
}

// GetMenu returns the full menu with its derived views: course sections in
// fixed order, per-course price averages and the combined item count.
func (s *MenuService) GetMenu(ctx context.Context, req *connect.Request[pb.GetMenuRequest]) (*connect.Response[pb.GetMenuResponse], error) {
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		slog.Error("GetMenu failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Debug("GetMenu request served",
		"items", len(snapshot.Items),
		"drinks", snapshot.Drinks.Count(),
	)

	return connect.NewResponse(&pb.GetMenuResponse{
		Items:          itemsToProto(snapshot.Items),
		Drinks:         drinksToProto(snapshot.Drinks),
		Sections:       sectionsToProto(menu.Sectionize(snapshot.Items)),
		Averages:       averagesToProto(menu.CourseAverages(snapshot.Items)),
		TotalItemCount: int32(menu.TotalItemCount(snapshot.Items, snapshot.Drinks)),
	}), nil
}
