package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/christoffel/menuapp/internal/middleware"
	"github.com/christoffel/menuapp/internal/models"
	"github.com/christoffel/menuapp/internal/session"
	pb "github.com/christoffel/menuapp/pkg/proto"
	"github.com/christoffel/menuapp/pkg/proto/protoconnect"
)

// AdminService implements the Connect AdminService: the chef's editing and
// removal flows. Every procedure sits behind the RequireAdmin interceptor, so
// by the time a request lands here the caller is the chef.
type AdminService struct {
	protoconnect.UnimplementedAdminServiceHandler
	controller *session.Controller
}

// NewAdminService creates a new AdminService on top of the controller.
func NewAdminService(controller *session.Controller) *AdminService {
	return &AdminService{controller: controller}
}

// BeginEdit moves the session onto the edit screen and returns the snapshot
// the form works against, plus the course choices for the picker.
func (s *AdminService) BeginEdit(ctx context.Context, req *connect.Request[pb.BeginEditRequest]) (*connect.Response[pb.BeginEditResponse], error) {
	items, err := s.controller.BeginEdit(ctx, req.Msg.SessionId)
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.BeginEditResponse{
		CurrentMenuItems: itemsToProto(items),
		Courses:          coursesToProto(models.FoodCourses),
	}), nil
}

// SaveNewItem validates the submitted form and adds the dish to the menu. The
// session stays on the edit screen so the chef can add another dish.
func (s *AdminService) SaveNewItem(ctx context.Context, req *connect.Request[pb.SaveNewItemRequest]) (*connect.Response[pb.SaveNewItemResponse], error) {
	form := session.ItemForm{
		Name:        req.Msg.Name,
		Description: req.Msg.Description,
		Course:      courseFromProto(req.Msg.Course),
		Price:       req.Msg.Price,
		ImageURI:    req.Msg.ImageUri,
	}

	item, updated, err := s.controller.SaveNewItem(ctx, req.Msg.SessionId, form)
	if err != nil {
		slog.Warn("SaveNewItem rejected", "session_id", req.Msg.SessionId, "error", err, "chef", middleware.GetUsername(ctx))
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.SaveNewItemResponse{
		NewMenuItem: itemToProto(item),
		MenuItems:   itemsToProto(updated.Items),
	}), nil
}

// BeginRemove moves the session onto the removal screen with nothing marked.
func (s *AdminService) BeginRemove(ctx context.Context, req *connect.Request[pb.BeginRemoveRequest]) (*connect.Response[pb.BeginRemoveResponse], error) {
	snapshot, err := s.controller.BeginRemove(ctx, req.Msg.SessionId)
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.BeginRemoveResponse{
		CurrentMenuItems:  itemsToProto(snapshot.Items),
		CurrentDrinksData: drinksToProto(snapshot.Drinks),
	}), nil
}

// ToggleRemoval flips the removal mark on a dish or drink and returns the
// full marked set.
func (s *AdminService) ToggleRemoval(ctx context.Context, req *connect.Request[pb.ToggleRemovalRequest]) (*connect.Response[pb.ToggleRemovalResponse], error) {
	marked, err := s.controller.ToggleRemoval(req.Msg.SessionId, req.Msg.Id)
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.ToggleRemovalResponse{
		MarkedIds: marked,
	}), nil
}

// SaveRemovals deletes everything marked and returns the session to the
// viewing screen. Saving with nothing marked fails with a precondition error
// the client shows as a notice; the menu is untouched.
func (s *AdminService) SaveRemovals(ctx context.Context, req *connect.Request[pb.SaveRemovalsRequest]) (*connect.Response[pb.SaveRemovalsResponse], error) {
	updated, err := s.controller.SaveRemovals(ctx, req.Msg.SessionId)
	if err != nil {
		return nil, sessionError(err)
	}

	slog.Info("SaveRemovals request served", "session_id", req.Msg.SessionId, "remaining_items", len(updated.Items))

	return connect.NewResponse(&pb.SaveRemovalsResponse{
		UpdatedMenuItems:  itemsToProto(updated.Items),
		UpdatedDrinksData: drinksToProto(updated.Drinks),
	}), nil
}

// AddDrink appends a drink to the given category's list.
func (s *AdminService) AddDrink(ctx context.Context, req *connect.Request[pb.AddDrinkRequest]) (*connect.Response[pb.AddDrinkResponse], error) {
	category := categoryFromProto(req.Msg.Category)
	if category == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, &session.ValidationError{Field: "drink category"})
	}

	updated, err := s.controller.AddDrink(ctx, category, req.Msg.Name)
	if err != nil {
		return nil, sessionError(err)
	}

	return connect.NewResponse(&pb.AddDrinkResponse{
		Drinks: drinksToProto(updated.Drinks),
	}), nil
}
