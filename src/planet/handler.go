package planet

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// errorStatus maps a service error to the HTTP status and user-facing
// description of the response envelope.
func errorStatus(err error) (int, string) {
	var validationErr *ValidationError
	var upstreamErr *UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Reason
	case errors.Is(err, ErrInvalidId):
		return http.StatusBadRequest, "Planet id is invalid"
	case errors.Is(err, ErrDuplicateName):
		return http.StatusBadRequest, "Planet insertion has failed"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Planet not found."
	case errors.As(err, &upstreamErr):
		return http.StatusBadRequest, upstreamErr.Error()
	default:
		return http.StatusBadRequest, err.Error()
	}
}

func failure(c *gin.Context, err error) {
	status, description := errorStatus(err)
	c.JSON(status, gin.H{
		"success":     false,
		"description": description,
	})
}

// AddPlanet godoc
// @Summary      Add a new planet
// @Description  Creates a planet, resolving a missing appearence count via SWAPI
// @Tags         Planet
// @Accept       json
// @Produce      json
// @Param        body  body      object{name=string,climate=string,terrain=string,appearences=int}  true  "Planet info"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /planets/add [post]
func (h *Handler) AddPlanet(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Climate     string `json:"climate"`
		Terrain     string `json:"terrain"`
		Appearences *int   `json:"appearences"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":     false,
			"description": "Inserted data is invalid",
		})
		return
	}

	planet, err := h.Service.AddPlanet(AddPlanetInput{
		Name:        req.Name,
		Climate:     req.Climate,
		Terrain:     req.Terrain,
		Appearences: req.Appearences,
	})
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"description": "Planet inserted successfully",
		"response":    gin.H{"planet": planet},
	})
}

// ListPlanets godoc
// @Summary      List planets
// @Description  Lists planets with pagination and sorting
// @Tags         Planet
// @Produce      json
// @Param        per_page  query  int     false  "Records per page (default 10)"
// @Param        page      query  int     false  "1-based page"
// @Param        sort      query  string  false  "name|climate|terrain|appearences"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /planets/list [get]
func (h *Handler) ListPlanets(c *gin.Context) {
	query, err := ParseListQuery(c.Query("per_page"), c.Query("page"), c.Query("sort"))
	if err != nil {
		failure(c, err)
		return
	}

	planets, err := h.Service.ListPlanets(query)
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": gin.H{"planets": planets},
	})
}

// GetPlanetByName godoc
// @Summary      Search planets by name
// @Description  Case-insensitive substring match against stored names
// @Tags         Planet
// @Produce      json
// @Param        name  path  string  true  "Name fragment"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /planets/getbyname/{name} [get]
func (h *Handler) GetPlanetByName(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":     false,
			"description": "Name parameter not found.",
		})
		return
	}

	planets, err := h.Service.GetPlanetsByName(name)
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": gin.H{"planets": planets},
	})
}

// GetPlanetById godoc
// @Summary      Get planet by id
// @Tags         Planet
// @Produce      json
// @Param        id  path  string  true  "Planet ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /planets/getbyid/{id} [get]
func (h *Handler) GetPlanetById(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":     false,
			"description": "Id parameter not found.",
		})
		return
	}

	planet, err := h.Service.GetPlanetById(id)
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": gin.H{"planet": planet},
	})
}

// DeletePlanetById godoc
// @Summary      Delete planet by id
// @Tags         Planet
// @Produce      json
// @Param        id  path  string  true  "Planet ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /planets/deletebyid/{id} [delete]
func (h *Handler) DeletePlanetById(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":     false,
			"description": "Id parameter not found.",
		})
		return
	}

	if _, err := h.Service.DeletePlanetById(id); err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"description": "Planet was successfully deleted",
	})
}
