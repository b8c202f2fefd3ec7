package api

import (
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/service/travel"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service travel.TravelUseCase
}

type createPassengerRequest struct {
	Name            string `json:"name"`
	PassengerNumber string `json:"passenger_number"`
	Type            string `json:"type"`
	BalanceCents    int64  `json:"balance_cents"`
}

type signupResponse struct {
	Message      string `json:"message"`
	Outcome      string `json:"outcome"`
	ActivityID   string `json:"activity_id"`
	ActivityName string `json:"activity_name"`
	AmountCents  int64  `json:"amount_cents"`
	BalanceCents int64  `json:"balance_cents"`
	SpacesLeft   int    `json:"spaces_left"`
}

func NewPassengerHandler(service travel.TravelUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("/passengers", h.create)
	router.GET("/passengers/:id", h.get)
	router.POST("/packages/:id/passengers/:passengerId", h.enroll)
	router.POST("/packages/:id/passengers/:passengerId/signups/:activityId", h.signUp)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req createPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := h.service.CreatePassenger(c.Request.Context(), travel.CreatePassengerInput{
		Name:            req.Name,
		PassengerNumber: req.PassengerNumber,
		Type:            req.Type,
		BalanceCents:    req.BalanceCents,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}

func (h *PassengerHandler) get(c *gin.Context) {
	passenger, err := h.service.GetPassengerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) enroll(c *gin.Context) {
	pkg, err := h.service.AddPassengerToPackage(c.Request.Context(), c.Param("id"), c.Param("passengerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *PassengerHandler) signUp(c *gin.Context) {
	result, err := h.service.SignUpForActivity(c.Request.Context(),
		c.Param("id"), c.Param("passengerId"), c.Param("activityId"))
	if err != nil {
		writeError(c, err)
		return
	}

	if result.Outcome == travel.SignupCapacityFull {
		c.JSON(http.StatusConflict, signupResponse{
			Message:      "Capacity is full for this activity",
			Outcome:      string(result.Outcome),
			ActivityID:   result.Activity.ID,
			ActivityName: result.Activity.Name,
		})
		return
	}

	c.JSON(http.StatusOK, signupResponse{
		Message:      "Signup successful",
		Outcome:      string(result.Outcome),
		ActivityID:   result.Activity.ID,
		ActivityName: result.Activity.Name,
		AmountCents:  result.AmountCents,
		BalanceCents: result.Passenger.BalanceCents,
		SpacesLeft:   result.SpacesLeft,
	})
}
