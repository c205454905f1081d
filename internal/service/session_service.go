package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/christoffel/menuapp/internal/menu"
	"github.com/christoffel/menuapp/internal/middleware"
	"github.com/christoffel/menuapp/internal/models"
	"github.com/christoffel/menuapp/internal/session"
	pb "github.com/christoffel/menuapp/pkg/proto"
	"github.com/christoffel/menuapp/pkg/proto/protoconnect"
)

// SessionService implements the Connect SessionService. It drives the
// guest-facing screen flow: viewing, filtering, ordering and checkout.
type SessionService struct {
	protoconnect.UnimplementedSessionServiceHandler
	controller *session.Controller
}

// NewSessionService creates a new SessionService on top of the controller.
func NewSessionService(controller *session.Controller) *SessionService {
	return &SessionService{controller: controller}
}

// StartSession opens a session for the calling user and resolves its initial
// route. The open_edit flag is honored only for the chef; guests asking for
// it are rejected before a session is created.
func (s *SessionService) StartSession(ctx context.Context, req *connect.Request[pb.StartSessionRequest]) (*connect.Response[pb.StartSessionResponse], error) {
	user := models.User{
		Username: middleware.GetUsername(ctx),
		Role:     middleware.GetRole(ctx),
	}

	if req.Msg.OpenEdit && !user.IsAdmin() {
		return nil, connect.NewError(connect.CodePermissionDenied, middleware.ErrAdminOnly)
	}

	sess, err := s.controller.Start(ctx, session.StartOptions{
		User:       user,
		OpenEdit:   req.Msg.OpenEdit,
		OpenFilter: req.Msg.OpenFilter,
	})
	if err != nil {
		slog.Error("StartSession failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("StartSession request served", "session_id", sess.ID, "route", sess.Route())

	return connect.NewResponse(&pb.StartSessionResponse{
		SessionId: sess.ID,
		Route:     routeToProto(sess.Route()),
	}), nil
}

// GetView returns the aggregated menu for the viewing screen.
func (s *SessionService) GetView(ctx context.Context, req *connect.Request[pb.GetViewRequest]) (*connect.Response[pb.GetViewResponse], error) {
	snapshot, err := s.controller.View(ctx, req.Msg.SessionId)
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.GetViewResponse{
		Sections:       sectionsToProto(menu.Sectionize(snapshot.Items)),
		Averages:       averagesToProto(menu.CourseAverages(snapshot.Items)),
		TotalItemCount: int32(menu.TotalItemCount(snapshot.Items, snapshot.Drinks)),
		Drinks:         drinksToProto(snapshot.Drinks),
	}), nil
}

// BeginFilter moves the session onto the filter screen.
func (s *SessionService) BeginFilter(ctx context.Context, req *connect.Request[pb.BeginFilterRequest]) (*connect.Response[pb.BeginFilterResponse], error) {
	snapshot, err := s.controller.BeginFilter(ctx, req.Msg.SessionId)
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.BeginFilterResponse{
		CurrentMenuItems:  itemsToProto(snapshot.Items),
		CurrentDrinksData: drinksToProto(snapshot.Drinks),
	}), nil
}

// SetFilter changes the course selection on the filter screen and returns the
// dishes matching it.
func (s *SessionService) SetFilter(ctx context.Context, req *connect.Request[pb.SetFilterRequest]) (*connect.Response[pb.SetFilterResponse], error) {
	items, err := s.controller.SetFilter(req.Msg.SessionId, filterFromProto(req.Msg.Course))
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.SetFilterResponse{
		Items: itemsToProto(items),
	}), nil
}

// AddToOrder appends the dish with the given ID to the session's order.
func (s *SessionService) AddToOrder(ctx context.Context, req *connect.Request[pb.AddToOrderRequest]) (*connect.Response[pb.AddToOrderResponse], error) {
	item, size, err := s.controller.AddToOrder(req.Msg.SessionId, req.Msg.ItemId)
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.AddToOrderResponse{
		OrderedItem: itemToProto(item),
		OrderSize:   int32(size),
	}), nil
}

// AddDrinkToOrder appends a drink order line at the flat drink price.
func (s *SessionService) AddDrinkToOrder(ctx context.Context, req *connect.Request[pb.AddDrinkToOrderRequest]) (*connect.Response[pb.AddDrinkToOrderResponse], error) {
	category := categoryFromProto(req.Msg.Category)
	if category == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, &session.ValidationError{Field: "drink category"})
	}

	item, size, err := s.controller.AddDrinkToOrder(req.Msg.SessionId, category, req.Msg.Name)
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.AddDrinkToOrderResponse{
		OrderedItem: itemToProto(item),
		OrderSize:   int32(size),
	}), nil
}

// Checkout carries the order to the checkout screen and returns the ordered
// items with their total.
func (s *SessionService) Checkout(ctx context.Context, req *connect.Request[pb.CheckoutRequest]) (*connect.Response[pb.CheckoutResponse], error) {
	items, total, err := s.controller.Checkout(req.Msg.SessionId)
	if err != nil {
		return nil, sessionError(err)
	}

	slog.Info("Checkout request served", "session_id", req.Msg.SessionId, "items", len(items), "total", total)

	return connect.NewResponse(&pb.CheckoutResponse{
		OrderedItems: itemsToProto(items),
		TotalAmount:  total,
	}), nil
}

// GoBack returns the session to the viewing screen from wherever it is.
func (s *SessionService) GoBack(ctx context.Context, req *connect.Request[pb.GoBackRequest]) (*connect.Response[pb.GoBackResponse], error) {
	route, err := s.controller.Back(req.Msg.SessionId)
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.GoBackResponse{
		Route: routeToProto(route),
	}), nil
}
