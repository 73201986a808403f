// Package resource lists the five OctoFit collections the client can browse.
package resource

import (
	"fmt"
	"strings"
)

// Definition configures one viewer: which endpoint it reads and how it is labelled.
type Definition struct {
	// Name is the endpoint suffix: GET {base}/api/{Name}/.
	Name string
	// Label is shown in the navigation bar and as the view title.
	Label string
	// Singular names one record in status messages ("Activity copied").
	Singular string
	// EmptyNoun is the plural used in the empty notice ("No teams available.").
	EmptyNoun string
	// FilterNoun labels the filter input ("Filter teams").
	FilterNoun string
	// Title titles the details overlay.
	Title string
	// Route is the static path this resource is mounted on.
	Route string
}

// Endpoint returns the collection URL for baseURL.
func (d Definition) Endpoint(baseURL string) string {
	return fmt.Sprintf("%s/api/%s/", strings.TrimRight(baseURL, "/"), d.Name)
}

// ErrorMessage is the banner shown when the collection cannot be loaded.
func (d Definition) ErrorMessage() string {
	return fmt.Sprintf("Unable to load %s.", d.Name)
}

// EmptyMessage is shown when the collection loaded but holds no records.
func (d Definition) EmptyMessage() string {
	return fmt.Sprintf("No %s available.", d.EmptyNoun)
}

// FilterLabel labels the filter input.
func (d Definition) FilterLabel() string {
	return "Filter " + d.FilterNoun
}

// DetailsTitle titles the details overlay.
func (d Definition) DetailsTitle() string {
	return d.Title
}

var all = []Definition{
	{Name: "activities", Label: "Activities", Singular: "Activity", EmptyNoun: "activities", FilterNoun: "activities", Title: "Activity Details", Route: "/"},
	{Name: "leaderboard", Label: "Leaderboard", Singular: "Leaderboard entry", EmptyNoun: "leaderboard entries", FilterNoun: "entries", Title: "Leaderboard Entry", Route: "/leaderboard"},
	{Name: "teams", Label: "Teams", Singular: "Team", EmptyNoun: "teams", FilterNoun: "teams", Title: "Team Details", Route: "/teams"},
	{Name: "users", Label: "Users", Singular: "User", EmptyNoun: "users", FilterNoun: "users", Title: "User Details", Route: "/users"},
	{Name: "workouts", Label: "Workouts", Singular: "Workout", EmptyNoun: "workouts", FilterNoun: "workouts", Title: "Workout Details", Route: "/workouts"},
}

// All returns the five definitions in navigation order.
func All() []Definition {
	out := make([]Definition, len(all))
	copy(out, all)
	return out
}

// Names returns the resource names in navigation order.
func Names() []string {
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}

// Lookup resolves a resource by name, label or route, case-insensitively.
func Lookup(key string) (Definition, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, d := range all {
		if k == d.Name || k == strings.ToLower(d.Label) || k == d.Route {
			return d, true
		}
	}
	return Definition{}, false
}

// Index returns the navigation position of the resource, or -1.
func Index(name string) int {
	for i, d := range all {
		if d.Name == name {
			return i
		}
	}
	return -1
}
