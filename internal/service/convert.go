package service

import (
	"github.com/christoffel/menuapp/internal/menu"
	"github.com/christoffel/menuapp/internal/models"
	"github.com/christoffel/menuapp/internal/session"
	pb "github.com/christoffel/menuapp/pkg/proto"
)

func courseToProto(course models.Course) pb.Course {
	switch course {
	case models.CourseSpecials:
		return pb.Course_COURSE_SPECIALS
	case models.CourseStarter:
		return pb.Course_COURSE_STARTER
	case models.CourseMainCourse:
		return pb.Course_COURSE_MAIN_COURSE
	case models.CourseDessert:
		return pb.Course_COURSE_DESSERT
	case models.CourseDrinks:
		return pb.Course_COURSE_DRINKS
	default:
		return pb.Course_COURSE_UNSPECIFIED
	}
}

func courseFromProto(course pb.Course) models.Course {
	switch course {
	case pb.Course_COURSE_SPECIALS:
		return models.CourseSpecials
	case pb.Course_COURSE_STARTER:
		return models.CourseStarter
	case pb.Course_COURSE_MAIN_COURSE:
		return models.CourseMainCourse
	case pb.Course_COURSE_DESSERT:
		return models.CourseDessert
	case pb.Course_COURSE_DRINKS:
		return models.CourseDrinks
	default:
		return ""
	}
}

func categoryFromProto(category pb.DrinkCategory) models.DrinkCategory {
	switch category {
	case pb.DrinkCategory_DRINK_CATEGORY_COLD:
		return models.ColdDrinks
	case pb.DrinkCategory_DRINK_CATEGORY_HOT:
		return models.HotDrinks
	default:
		return ""
	}
}

func routeToProto(route session.Route) pb.Route {
	switch route {
	case session.RouteViewing:
		return pb.Route_ROUTE_VIEWING
	case session.RouteEditing:
		return pb.Route_ROUTE_EDITING
	case session.RouteFiltering:
		return pb.Route_ROUTE_FILTERING
	case session.RouteRemoving:
		return pb.Route_ROUTE_REMOVING
	case session.RouteCheckout:
		return pb.Route_ROUTE_CHECKOUT
	default:
		return pb.Route_ROUTE_UNSPECIFIED
	}
}

func itemToProto(item models.MenuItem) *pb.MenuItem {
	return &pb.MenuItem{
		Id:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Course:      courseToProto(item.Course),
		Price:       item.Price,
		ImageUri:    item.ImageURI,
	}
}

func itemsToProto(items []models.MenuItem) []*pb.MenuItem {
	out := make([]*pb.MenuItem, len(items))
	for i, item := range items {
		out[i] = itemToProto(item)
	}
	return out
}

func drinksToProto(drinks models.DrinksData) *pb.DrinksData {
	return &pb.DrinksData{
		ColdDrinks: append([]string(nil), drinks.Cold...),
		HotDrinks:  append([]string(nil), drinks.Hot...),
	}
}

func sectionsToProto(sections []menu.Section) []*pb.MenuSection {
	out := make([]*pb.MenuSection, len(sections))
	for i, section := range sections {
		out[i] = &pb.MenuSection{
			Title: courseToProto(section.Title),
			Data:  itemsToProto(section.Data),
		}
	}
	return out
}

func averagesToProto(averages []menu.CourseAverage) []*pb.CourseAverage {
	out := make([]*pb.CourseAverage, len(averages))
	for i, avg := range averages {
		out[i] = &pb.CourseAverage{
			Course:       courseToProto(avg.Course),
			AveragePrice: avg.Average,
		}
	}
	return out
}

func coursesToProto(courses []models.Course) []pb.Course {
	out := make([]pb.Course, len(courses))
	for i, course := range courses {
		out[i] = courseToProto(course)
	}
	return out
}

// filterFromProto maps the wire selection onto a session filter. The
// unspecified course means "show everything", matching the filter screen's
// default chip.
func filterFromProto(course pb.Course) session.Filter {
	if course == pb.Course_COURSE_UNSPECIFIED {
		return session.FilterAll
	}
	return session.Filter(courseFromProto(course))
}
