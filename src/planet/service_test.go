package planet

import (
	"errors"
	"fmt"
	"testing"
)

type stubRepository struct {
	created   []*Planet
	createErr error
	lastQuery ListQuery
}

func (r *stubRepository) Create(planet *Planet) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, planet)
	return nil
}

func (r *stubRepository) Find(query ListQuery) ([]Planet, error) {
	r.lastQuery = query
	return []Planet{}, nil
}

func (r *stubRepository) FindByName(name string) ([]Planet, error) {
	return []Planet{}, nil
}

func (r *stubRepository) GetById(id string) (*Planet, error) {
	return nil, ErrNotFound
}

func (r *stubRepository) DeleteById(id string) (*Planet, error) {
	return nil, ErrNotFound
}

type stubLookup struct {
	count int
	err   error
	calls int
}

func (l *stubLookup) MovieAppearances(name string) (int, error) {
	l.calls++
	return l.count, l.err
}

func intPtr(n int) *int { return &n }

func TestAddPlanetValidation(t *testing.T) {
	tests := []struct {
		name  string
		input AddPlanetInput
	}{
		{
			name:  "Empty name",
			input: AddPlanetInput{Name: "", Climate: "arid", Terrain: "desert"},
		},
		{
			name:  "Whitespace-only name",
			input: AddPlanetInput{Name: "   ", Climate: "arid", Terrain: "desert"},
		},
		{
			name:  "Empty climate",
			input: AddPlanetInput{Name: "Tatooine", Climate: "", Terrain: "desert"},
		},
		{
			name:  "Empty terrain",
			input: AddPlanetInput{Name: "Tatooine", Climate: "arid", Terrain: ""},
		},
		{
			name:  "Negative appearences",
			input: AddPlanetInput{Name: "Tatooine", Climate: "arid", Terrain: "desert", Appearences: intPtr(-1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{}
			lookup := &stubLookup{}
			service := NewService(repo, lookup)

			_, err := service.AddPlanet(tt.input)

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if len(repo.created) != 0 {
				t.Errorf("Expected no planet to be created, got %d", len(repo.created))
			}
			if lookup.calls != 0 {
				t.Errorf("Expected lookup not to be called, got %d calls", lookup.calls)
			}
		})
	}
}

func TestAddPlanetTrimsFields(t *testing.T) {
	repo := &stubRepository{}
	service := NewService(repo, &stubLookup{count: 1})

	planet, err := service.AddPlanet(AddPlanetInput{
		Name:    " Dantooine",
		Climate: "temperate    ",
		Terrain: " oceans, savannas, mountains, grasslands  ",
	})
	if err != nil {
		t.Fatalf("Expected planet to be created, got error %v", err)
	}

	if planet.Name != "Dantooine" {
		t.Errorf("Expected trimmed name %q, got %q", "Dantooine", planet.Name)
	}
	if planet.Climate != "temperate" {
		t.Errorf("Expected trimmed climate %q, got %q", "temperate", planet.Climate)
	}
	if planet.Terrain != "oceans, savannas, mountains, grasslands" {
		t.Errorf("Expected trimmed terrain, got %q", planet.Terrain)
	}
	if planet.PlanetId == "" {
		t.Error("Expected a generated planet id")
	}
}

func TestAddPlanetAppearanceResolution(t *testing.T) {
	tests := []struct {
		name          string
		appearences   *int
		lookupCount   int
		expectedCount int
		expectedCalls int
	}{
		{
			name:          "Supplied positive value used verbatim",
			appearences:   intPtr(3),
			lookupCount:   7,
			expectedCount: 3,
			expectedCalls: 0,
		},
		{
			name:          "Absent value resolved via lookup",
			appearences:   nil,
			lookupCount:   5,
			expectedCount: 5,
			expectedCalls: 1,
		},
		{
			name:          "Zero value resolved via lookup",
			appearences:   intPtr(0),
			lookupCount:   2,
			expectedCount: 2,
			expectedCalls: 1,
		},
		{
			name:          "Lookup miss defaults to zero",
			appearences:   nil,
			lookupCount:   0,
			expectedCount: 0,
			expectedCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{}
			lookup := &stubLookup{count: tt.lookupCount}
			service := NewService(repo, lookup)

			planet, err := service.AddPlanet(AddPlanetInput{
				Name:        "Tatooine",
				Climate:     "arid",
				Terrain:     "desert",
				Appearences: tt.appearences,
			})
			if err != nil {
				t.Fatalf("Expected planet to be created, got error %v", err)
			}

			if planet.Appearences != tt.expectedCount {
				t.Errorf("Expected appearences %d, got %d", tt.expectedCount, planet.Appearences)
			}
			if lookup.calls != tt.expectedCalls {
				t.Errorf("Expected %d lookup calls, got %d", tt.expectedCalls, lookup.calls)
			}
		})
	}
}

func TestAddPlanetLookupFailure(t *testing.T) {
	repo := &stubRepository{}
	lookup := &stubLookup{err: fmt.Errorf("connection refused")}
	service := NewService(repo, lookup)

	_, err := service.AddPlanet(AddPlanetInput{Name: "Tatooine", Climate: "arid", Terrain: "desert"})

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("Expected UpstreamError, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("Expected no planet to be created, got %d", len(repo.created))
	}
}

func TestAddPlanetDuplicateName(t *testing.T) {
	repo := &stubRepository{createErr: ErrDuplicateName}
	service := NewService(repo, &stubLookup{count: 1})

	_, err := service.AddPlanet(AddPlanetInput{Name: "Tatooine", Climate: "arid", Terrain: "desert"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestParseListQuery(t *testing.T) {
	tests := []struct {
		name      string
		perPage   string
		page      string
		sort      string
		expected  ListQuery
		expectErr bool
	}{
		{
			name:     "Defaults",
			expected: ListQuery{PerPage: 10, Page: 0, Sort: "name"},
		},
		{
			name:     "Explicit values",
			perPage:  "5",
			page:     "3",
			sort:     "terrain",
			expected: ListQuery{PerPage: 5, Page: 3, Sort: "terrain"},
		},
		{
			name:     "Sort is case-insensitive and trimmed",
			sort:     "    CLiMaTe",
			expected: ListQuery{PerPage: 10, Page: 0, Sort: "climate"},
		},
		{
			name:      "Negative page",
			page:      "-1",
			expectErr: true,
		},
		{
			name:      "Zero page",
			page:      "0",
			expectErr: true,
		},
		{
			name:      "Negative per_page",
			perPage:   "-1",
			expectErr: true,
		},
		{
			name:      "Non-numeric per_page",
			perPage:   "aaa",
			expectErr: true,
		},
		{
			name:      "Non-numeric page",
			page:      "aaa",
			expectErr: true,
		},
		{
			name:      "Unknown sort field",
			sort:      "aaa",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := ParseListQuery(tt.perPage, tt.page, tt.sort)

			if tt.expectErr {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("Expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected query to parse, got error %v", err)
			}
			if query != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, query)
			}
		})
	}
}

func TestListQueryOffset(t *testing.T) {
	tests := []struct {
		name     string
		query    ListQuery
		expected int
	}{
		{"No page", ListQuery{PerPage: 10}, 0},
		{"First page", ListQuery{PerPage: 10, Page: 1}, 0},
		{"Third page", ListQuery{PerPage: 5, Page: 3}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Offset(); got != tt.expected {
				t.Errorf("Expected offset %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestGetPlanetByIdMalformedId(t *testing.T) {
	service := NewService(&stubRepository{}, &stubLookup{})

	if _, err := service.GetPlanetById("1"); !errors.Is(err, ErrInvalidId) {
		t.Errorf("Expected ErrInvalidId for get, got %v", err)
	}
	if _, err := service.DeletePlanetById("1"); !errors.Is(err, ErrInvalidId) {
		t.Errorf("Expected ErrInvalidId for delete, got %v", err)
	}
}
