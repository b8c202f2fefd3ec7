package api

import (
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/service/travel"
	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	service travel.TravelUseCase
}

type createPackageRequest struct {
	Name              string `json:"name"`
	PassengerCapacity int    `json:"passenger_capacity"`
}

type createDestinationRequest struct {
	Name string `json:"name"`
}

type createActivityRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	CostCents       int64  `json:"cost_cents"`
	Capacity        int    `json:"capacity"`
	DestinationName string `json:"destination_name"`
}

func NewPackageHandler(service travel.TravelUseCase) *PackageHandler {
	return &PackageHandler{service: service}
}

func (h *PackageHandler) Register(router *gin.RouterGroup) {
	router.POST("/packages", h.create)
	router.GET("/packages", h.list)
	router.GET("/packages/:id", h.itinerary)
	router.GET("/packages/:id/passengers", h.passengerList)
	router.GET("/packages/:id/activities", h.availableActivities)
	router.POST("/packages/:id/destinations/:destinationId", h.addDestination)
	router.POST("/packages/:id/destinations/:destinationId/activities", h.addActivity)
	router.POST("/destinations", h.createDestination)
	router.POST("/activities", h.createActivity)
	router.GET("/activities/:id", h.getActivity)
}

func (h *PackageHandler) create(c *gin.Context) {
	var req createPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.service.CreateTravelPackage(c.Request.Context(), travel.CreatePackageInput{
		Name:              req.Name,
		PassengerCapacity: req.PassengerCapacity,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// list returns all packages, or a single package when ?name= is given.
func (h *PackageHandler) list(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		pkg, err := h.service.GetTravelPackageByName(c.Request.Context(), name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, pkg)
		return
	}

	packages, err := h.service.ListTravelPackages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *PackageHandler) itinerary(c *gin.Context) {
	pkg, err := h.service.GetTravelPackageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) passengerList(c *gin.Context) {
	list, err := h.service.GetPassengerList(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PackageHandler) availableActivities(c *gin.Context) {
	activities, err := h.service.GetAvailableActivities(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *PackageHandler) addDestination(c *gin.Context) {
	pkg, err := h.service.AddDestinationToPackage(c.Request.Context(), c.Param("id"), c.Param("destinationId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) addActivity(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.service.AddActivityToDestination(c.Request.Context(), c.Param("id"), c.Param("destinationId"), travel.CreateActivityInput{
		Name:        req.Name,
		Description: req.Description,
		CostCents:   req.CostCents,
		Capacity:    req.Capacity,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) createDestination(c *gin.Context) {
	var req createDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	destination, err := h.service.CreateDestination(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, destination)
}

func (h *PackageHandler) createActivity(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.service.CreateActivity(c.Request.Context(), travel.CreateActivityInput{
		Name:            req.Name,
		Description:     req.Description,
		CostCents:       req.CostCents,
		Capacity:        req.Capacity,
		DestinationName: req.DestinationName,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (h *PackageHandler) getActivity(c *gin.Context) {
	activity, err := h.service.GetActivityByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}
