package planet

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// AppearanceLookup resolves how many films a planet appears in. A name with
// no match resolves to 0 rather than an error.
type AppearanceLookup interface {
	MovieAppearances(name string) (int, error)
}

type Service struct {
	PlanetRepo Repository
	Lookup     AppearanceLookup
}

func NewService(repo Repository, lookup AppearanceLookup) *Service {
	return &Service{
		PlanetRepo: repo,
		Lookup:     lookup,
	}
}

type AddPlanetInput struct {
	Name        string
	Climate     string
	Terrain     string
	Appearences *int
}

// AddPlanet validates and normalizes the input, resolves a missing
// appearance count through the lookup, and persists the planet. The lookup
// is consulted at most once.
func (s *Service) AddPlanet(in AddPlanetInput) (*Planet, error) {
	name := strings.TrimSpace(in.Name)
	climate := strings.TrimSpace(in.Climate)
	terrain := strings.TrimSpace(in.Terrain)

	if name == "" || climate == "" || terrain == "" {
		return nil, &ValidationError{Reason: "Inserted data is invalid"}
	}
	if in.Appearences != nil && *in.Appearences < 0 {
		return nil, &ValidationError{Reason: "Inserted data is invalid"}
	}

	appearences := 0
	if in.Appearences != nil {
		appearences = *in.Appearences
	}
	if appearences == 0 {
		count, err := s.Lookup.MovieAppearances(name)
		if err != nil {
			return nil, &UpstreamError{Err: err}
		}
		appearences = count
	}

	planet := &Planet{
		PlanetId:    uuid.New().String(),
		Name:        name,
		Climate:     climate,
		Terrain:     terrain,
		Appearences: appearences,
	}
	if err := s.PlanetRepo.Create(planet); err != nil {
		return nil, err
	}

	return planet, nil
}

var sortFields = map[string]bool{
	"name":        true,
	"climate":     true,
	"terrain":     true,
	"appearences": true,
}

// ListQuery is the validated pagination/sort configuration of the list
// operation. Sort is always one of the four allowed fields.
type ListQuery struct {
	PerPage int
	Page    int
	Sort    string
}

// Offset is the number of records skipped: per_page * (page - 1), or 0 when
// no page was supplied.
func (q ListQuery) Offset() int {
	if q.Page == 0 {
		return 0
	}
	return q.PerPage * (q.Page - 1)
}

// ParseListQuery validates the raw query parameters, applying the defaults
// per_page=10 and sort=name. The sort field is matched case-insensitively
// after trimming.
func ParseListQuery(perPage, page, sort string) (ListQuery, error) {
	query := ListQuery{PerPage: 10, Sort: "name"}

	if perPage != "" {
		n, err := strconv.Atoi(perPage)
		if err != nil || n <= 0 {
			return ListQuery{}, &ValidationError{Reason: "Filter parameters are invalid"}
		}
		query.PerPage = n
	}
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n <= 0 {
			return ListQuery{}, &ValidationError{Reason: "Filter parameters are invalid"}
		}
		query.Page = n
	}
	if sort != "" {
		field := strings.ToLower(strings.TrimSpace(sort))
		if !sortFields[field] {
			return ListQuery{}, &ValidationError{Reason: "Filter parameters are invalid"}
		}
		query.Sort = field
	}

	return query, nil
}

func (s *Service) ListPlanets(query ListQuery) ([]Planet, error) {
	return s.PlanetRepo.Find(query)
}

func (s *Service) GetPlanetsByName(name string) ([]Planet, error) {
	return s.PlanetRepo.FindByName(name)
}

func (s *Service) GetPlanetById(id string) (*Planet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidId
	}
	return s.PlanetRepo.GetById(id)
}

func (s *Service) DeletePlanetById(id string) (*Planet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidId
	}
	return s.PlanetRepo.DeleteById(id)
}
