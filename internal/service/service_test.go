package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/christoffel/menuapp/internal/auth"
	"github.com/christoffel/menuapp/internal/catalog"
	"github.com/christoffel/menuapp/internal/middleware"
	"github.com/christoffel/menuapp/internal/session"
	"github.com/christoffel/menuapp/internal/storage/memory"
	pb "github.com/christoffel/menuapp/pkg/proto"
	"github.com/christoffel/menuapp/pkg/proto/protoconnect"
)

type testClients struct {
	auth    protoconnect.AuthServiceClient
	menu    protoconnect.MenuServiceClient
	session protoconnect.SessionServiceClient
	admin   protoconnect.AdminServiceClient
}

// setupTestServer wires the full handler stack the way cmd/server does:
// optional auth on the public services, RequireAdmin on the chef's.
func setupTestServer(t *testing.T) (testClients, func()) {
	t.Helper()

	store := memory.New(catalog.Seed())
	controller := session.NewController(store)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	hash, err := auth.HashPassword("secret-sauce")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	authenticator := auth.NewPasswordAuthenticator("chef", hash)

	publicOpts := connect.WithInterceptors(middleware.OptionalAuth(jwtManager))
	adminOpts := connect.WithInterceptors(middleware.RequireAdmin(jwtManager))

	mux := http.NewServeMux()

	authPath, authHandler := protoconnect.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, slog.Default()), publicOpts)
	mux.Handle(authPath, authHandler)

	menuPath, menuHandler := protoconnect.NewMenuServiceHandler(NewMenuService(store), publicOpts)
	mux.Handle(menuPath, menuHandler)

	sessionPath, sessionHandler := protoconnect.NewSessionServiceHandler(NewSessionService(controller), publicOpts)
	mux.Handle(sessionPath, sessionHandler)

	adminPath, adminHandler := protoconnect.NewAdminServiceHandler(NewAdminService(controller), adminOpts)
	mux.Handle(adminPath, adminHandler)

	server := httptest.NewServer(mux)

	clients := testClients{
		auth:    protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		menu:    protoconnect.NewMenuServiceClient(http.DefaultClient, server.URL),
		session: protoconnect.NewSessionServiceClient(http.DefaultClient, server.URL),
		admin:   protoconnect.NewAdminServiceClient(http.DefaultClient, server.URL),
	}

	return clients, server.Close
}

// loginChef logs in with the chef credentials and returns the bearer token.
func loginChef(t *testing.T, clients testClients) string {
	t.Helper()

	resp, err := clients.auth.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{
		Username: "chef",
		Password: "secret-sauce",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !resp.Msg.IsAdmin {
		t.Fatal("chef login should report is_admin")
	}
	return resp.Msg.Token
}

func withToken[T any](req *connect.Request[T], token string) *connect.Request[T] {
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestLoginGuest(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := clients.auth.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{
		Username: "alice",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.IsAdmin {
		t.Error("guest login should not report is_admin")
	}
	if resp.Msg.Token == "" {
		t.Error("guest login should still get a token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := clients.auth.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{
		Username: "chef",
		Password: "wrong",
	}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("code = %v, want unauthenticated", connect.CodeOf(err))
	}
}

func TestGetMenu(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := clients.menu.GetMenu(context.Background(), connect.NewRequest(&pb.GetMenuRequest{}))
	if err != nil {
		t.Fatalf("GetMenu failed: %v", err)
	}

	if len(resp.Msg.Items) != 8 {
		t.Errorf("got %d items, want 8", len(resp.Msg.Items))
	}
	if resp.Msg.TotalItemCount != 14 {
		t.Errorf("total item count = %d, want 14", resp.Msg.TotalItemCount)
	}
	if len(resp.Msg.Sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(resp.Msg.Sections))
	}
	if resp.Msg.Sections[0].Title != pb.Course_COURSE_SPECIALS {
		t.Errorf("first section = %v, want specials", resp.Msg.Sections[0].Title)
	}

	var starterAvg float64
	for _, avg := range resp.Msg.Averages {
		if avg.Course == pb.Course_COURSE_STARTER {
			starterAvg = avg.AveragePrice
		}
	}
	if starterAvg != 132.5 {
		t.Errorf("starter average = %v, want 132.5", starterAvg)
	}
}

func TestGuestBrowseAndCheckout(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	start, err := clients.session.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{OpenFilter: true}))
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if start.Msg.Route != pb.Route_ROUTE_FILTERING {
		t.Fatalf("route = %v, want filtering", start.Msg.Route)
	}
	sessionID := start.Msg.SessionId

	filtered, err := clients.session.SetFilter(ctx, connect.NewRequest(&pb.SetFilterRequest{
		SessionId: sessionID,
		Course:    pb.Course_COURSE_STARTER,
	}))
	if err != nil {
		t.Fatalf("SetFilter failed: %v", err)
	}
	if len(filtered.Msg.Items) != 2 {
		t.Fatalf("starter filter shows %d items, want 2", len(filtered.Msg.Items))
	}

	ordered, err := clients.session.AddToOrder(ctx, connect.NewRequest(&pb.AddToOrderRequest{
		SessionId: sessionID,
		ItemId:    filtered.Msg.Items[0].Id,
	}))
	if err != nil {
		t.Fatalf("AddToOrder failed: %v", err)
	}
	if ordered.Msg.OrderSize != 1 {
		t.Errorf("order size = %d, want 1", ordered.Msg.OrderSize)
	}

	drink, err := clients.session.AddDrinkToOrder(ctx, connect.NewRequest(&pb.AddDrinkToOrderRequest{
		SessionId: sessionID,
		Category:  pb.DrinkCategory_DRINK_CATEGORY_HOT,
		Name:      "Tea",
	}))
	if err != nil {
		t.Fatalf("AddDrinkToOrder failed: %v", err)
	}
	if drink.Msg.OrderedItem.Price != 25 {
		t.Errorf("drink price = %v, want 25", drink.Msg.OrderedItem.Price)
	}

	checkout, err := clients.session.Checkout(ctx, connect.NewRequest(&pb.CheckoutRequest{SessionId: sessionID}))
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	want := ordered.Msg.OrderedItem.Price + 25
	if checkout.Msg.TotalAmount != want {
		t.Errorf("checkout total = %v, want %v", checkout.Msg.TotalAmount, want)
	}
	if len(checkout.Msg.OrderedItems) != 2 {
		t.Errorf("checkout has %d items, want 2", len(checkout.Msg.OrderedItems))
	}
}

func TestAdminRequiresToken(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	_, err := clients.admin.BeginEdit(ctx, connect.NewRequest(&pb.BeginEditRequest{SessionId: "any"}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("no token: code = %v, want unauthenticated", connect.CodeOf(err))
	}

	// A guest token is authenticated but not authorized.
	guest, err := clients.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Username: "alice"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	_, err = clients.admin.BeginEdit(ctx, withToken(connect.NewRequest(&pb.BeginEditRequest{SessionId: "any"}), guest.Msg.Token))
	if connect.CodeOf(err) != connect.CodePermissionDenied {
		t.Errorf("guest token: code = %v, want permission_denied", connect.CodeOf(err))
	}
}

func TestGuestCannotOpenEdit(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := clients.session.StartSession(context.Background(), connect.NewRequest(&pb.StartSessionRequest{OpenEdit: true}))
	if connect.CodeOf(err) != connect.CodePermissionDenied {
		t.Errorf("code = %v, want permission_denied", connect.CodeOf(err))
	}
}

func TestChefEditFlow(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()
	token := loginChef(t, clients)

	start, err := clients.session.StartSession(ctx, withToken(connect.NewRequest(&pb.StartSessionRequest{OpenEdit: true}), token))
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if start.Msg.Route != pb.Route_ROUTE_EDITING {
		t.Fatalf("route = %v, want editing", start.Msg.Route)
	}
	sessionID := start.Msg.SessionId

	// A form with a missing description is rejected without touching the menu.
	_, err = clients.admin.SaveNewItem(ctx, withToken(connect.NewRequest(&pb.SaveNewItemRequest{
		SessionId: sessionID,
		Name:      "Pan-Fried Halibut",
		Course:    pb.Course_COURSE_MAIN_COURSE,
		Price:     180,
		ImageUri:  "https://example.com/halibut.jpg",
	}), token))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("invalid form: code = %v, want invalid_argument", connect.CodeOf(err))
	}

	saved, err := clients.admin.SaveNewItem(ctx, withToken(connect.NewRequest(&pb.SaveNewItemRequest{
		SessionId:   sessionID,
		Name:        "Pan-Fried Halibut",
		Description: "Halibut fillet with brown butter.",
		Course:      pb.Course_COURSE_MAIN_COURSE,
		Price:       180,
		ImageUri:    "https://example.com/halibut.jpg",
	}), token))
	if err != nil {
		t.Fatalf("SaveNewItem failed: %v", err)
	}
	if len(saved.Msg.MenuItems) != 9 {
		t.Errorf("menu has %d items, want 9", len(saved.Msg.MenuItems))
	}
	if saved.Msg.MenuItems[0].Id != saved.Msg.NewMenuItem.Id {
		t.Error("new dish should be first in the menu")
	}

	menu, err := clients.menu.GetMenu(ctx, connect.NewRequest(&pb.GetMenuRequest{}))
	if err != nil {
		t.Fatalf("GetMenu failed: %v", err)
	}
	if menu.Msg.TotalItemCount != 15 {
		t.Errorf("total item count = %d, want 15", menu.Msg.TotalItemCount)
	}
}

func TestChefRemovalFlow(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()
	token := loginChef(t, clients)

	start, err := clients.session.StartSession(ctx, withToken(connect.NewRequest(&pb.StartSessionRequest{}), token))
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	sessionID := start.Msg.SessionId

	begun, err := clients.admin.BeginRemove(ctx, withToken(connect.NewRequest(&pb.BeginRemoveRequest{SessionId: sessionID}), token))
	if err != nil {
		t.Fatalf("BeginRemove failed: %v", err)
	}
	if len(begun.Msg.CurrentMenuItems) != 8 {
		t.Fatalf("removal screen shows %d items, want 8", len(begun.Msg.CurrentMenuItems))
	}

	// Saving with nothing marked is refused.
	_, err = clients.admin.SaveRemovals(ctx, withToken(connect.NewRequest(&pb.SaveRemovalsRequest{SessionId: sessionID}), token))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Errorf("empty selection: code = %v, want failed_precondition", connect.CodeOf(err))
	}

	marked, err := clients.admin.ToggleRemoval(ctx, withToken(connect.NewRequest(&pb.ToggleRemovalRequest{
		SessionId: sessionID,
		Id:        "4",
	}), token))
	if err != nil {
		t.Fatalf("ToggleRemoval failed: %v", err)
	}
	if len(marked.Msg.MarkedIds) != 1 {
		t.Errorf("marked = %v, want one entry", marked.Msg.MarkedIds)
	}

	if _, err := clients.admin.ToggleRemoval(ctx, withToken(connect.NewRequest(&pb.ToggleRemovalRequest{
		SessionId: sessionID,
		Id:        "hot-Tea",
	}), token)); err != nil {
		t.Fatalf("ToggleRemoval drink failed: %v", err)
	}

	saved, err := clients.admin.SaveRemovals(ctx, withToken(connect.NewRequest(&pb.SaveRemovalsRequest{SessionId: sessionID}), token))
	if err != nil {
		t.Fatalf("SaveRemovals failed: %v", err)
	}
	if len(saved.Msg.UpdatedMenuItems) != 7 {
		t.Errorf("menu has %d items after removal, want 7", len(saved.Msg.UpdatedMenuItems))
	}
	if len(saved.Msg.UpdatedDrinksData.HotDrinks) != 2 {
		t.Errorf("hot drinks after removal = %v, want 2 left", saved.Msg.UpdatedDrinksData.HotDrinks)
	}
}

func TestAddDrink(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()
	token := loginChef(t, clients)

	resp, err := clients.admin.AddDrink(ctx, withToken(connect.NewRequest(&pb.AddDrinkRequest{
		Category: pb.DrinkCategory_DRINK_CATEGORY_COLD,
		Name:     "Lemonade",
	}), token))
	if err != nil {
		t.Fatalf("AddDrink failed: %v", err)
	}
	if len(resp.Msg.Drinks.ColdDrinks) != 4 {
		t.Errorf("cold drinks = %v, want Lemonade appended", resp.Msg.Drinks.ColdDrinks)
	}

	_, err = clients.admin.AddDrink(ctx, withToken(connect.NewRequest(&pb.AddDrinkRequest{
		Category: pb.DrinkCategory_DRINK_CATEGORY_COLD,
	}), token))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("empty name: code = %v, want invalid_argument", connect.CodeOf(err))
	}

	_, err = clients.admin.AddDrink(ctx, withToken(connect.NewRequest(&pb.AddDrinkRequest{
		Name: "Mystery drink",
	}), token))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("unspecified category: code = %v, want invalid_argument", connect.CodeOf(err))
	}
}

func TestGoBackFromFilter(t *testing.T) {
	clients, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	start, err := clients.session.StartSession(ctx, connect.NewRequest(&pb.StartSessionRequest{OpenFilter: true}))
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	back, err := clients.session.GoBack(ctx, connect.NewRequest(&pb.GoBackRequest{SessionId: start.Msg.SessionId}))
	if err != nil {
		t.Fatalf("GoBack failed: %v", err)
	}
	if back.Msg.Route != pb.Route_ROUTE_VIEWING {
		t.Errorf("route = %v, want viewing", back.Msg.Route)
	}

	view, err := clients.session.GetView(ctx, connect.NewRequest(&pb.GetViewRequest{SessionId: start.Msg.SessionId}))
	if err != nil {
		t.Fatalf("GetView failed: %v", err)
	}
	if view.Msg.TotalItemCount != 14 {
		t.Errorf("total item count = %d, want 14", view.Msg.TotalItemCount)
	}
}
