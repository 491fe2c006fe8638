package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type FinanceController struct {
	financeService services.FinanceServiceInterface
}

func NewFinanceController(financeService services.FinanceServiceInterface) *FinanceController {
	return &FinanceController{
		financeService: financeService,
	}
}

// ---- Donations ----

func (fc *FinanceController) ListDonationsHandler(c *gin.Context) {
	donations, err := fc.financeService.ListDonations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, donations, "Fetched donations successfully")
}

func (fc *FinanceController) CreateDonationHandler(c *gin.Context) {
	var req request_models.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	donation, err := fc.financeService.CreateDonation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, donation, "Donation created successfully")
}

func (fc *FinanceController) UpdateDonationHandler(c *gin.Context) {
	var req request_models.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := fc.financeService.UpdateDonation(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Donation updated successfully")
}

func (fc *FinanceController) DeleteDonationHandler(c *gin.Context) {
	if err := fc.financeService.DeleteDonation(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Donation deleted successfully")
}

// ---- Collections ----

func (fc *FinanceController) ListCollectionsHandler(c *gin.Context) {
	collections, err := fc.financeService.ListCollections(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, collections, "Fetched collections successfully")
}

func (fc *FinanceController) CreateCollectionHandler(c *gin.Context) {
	var req request_models.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := fc.financeService.CreateCollection(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, entry, "Collection created successfully")
}

func (fc *FinanceController) UpdateCollectionHandler(c *gin.Context) {
	var req request_models.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := fc.financeService.UpdateCollection(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Collection updated successfully")
}

func (fc *FinanceController) DeleteCollectionHandler(c *gin.Context) {
	if err := fc.financeService.DeleteCollection(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Collection deleted successfully")
}

// ---- Expenses ----

func (fc *FinanceController) ListExpensesHandler(c *gin.Context) {
	expenses, err := fc.financeService.ListExpenses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Fetched expenses successfully")
}

func (fc *FinanceController) CreateExpenseHandler(c *gin.Context) {
	var req request_models.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := fc.financeService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, expense, "Expense created successfully")
}

func (fc *FinanceController) UpdateExpenseHandler(c *gin.Context) {
	var req request_models.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := fc.financeService.UpdateExpense(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense updated successfully")
}

func (fc *FinanceController) DeleteExpenseHandler(c *gin.Context) {
	if err := fc.financeService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense deleted successfully")
}

// ---- Summary ----

func (fc *FinanceController) FinanceSummaryHandler(c *gin.Context) {
	summary, err := fc.financeService.Summary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Fetched finance summary successfully")
}
