package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/middleware"
)

// accountingHandler handles the chart of accounts, the journal and the
// financial reports.
type accountingHandler struct {
	accounts  portssvc.ChartOfAccountsSvcFacade
	journal   portssvc.JournalSvcFacade
	reporting portssvc.ReportingSvcFacade
}

func newAccountingHandler(accounts portssvc.ChartOfAccountsSvcFacade, journal portssvc.JournalSvcFacade, reporting portssvc.ReportingSvcFacade) *accountingHandler {
	return &accountingHandler{accounts: accounts, journal: journal, reporting: reporting}
}

func registerAccountingRoutes(rg *gin.RouterGroup, accounts portssvc.ChartOfAccountsSvcFacade, journal portssvc.JournalSvcFacade, reporting portssvc.ReportingSvcFacade) {
	h := newAccountingHandler(accounts, journal, reporting)

	accounting := rg.Group("/accounting")
	accounting.GET("/chart-of-accounts", h.listAccounts)
	accounting.POST("/chart-of-accounts", h.addAccount)
	accounting.GET("/journal-entries", h.listJournalEntries)
	accounting.POST("/journal-entries", h.postJournalEntry)
	accounting.GET("/journal-entries/:journalEntryID", h.getJournalEntry)
	accounting.GET("/reports/trial-balance", h.trialBalance)
	accounting.GET("/reports/income-statement", h.incomeStatement)
	accounting.GET("/reports/balance-sheet", h.balanceSheet)
}

func (h *accountingHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

func (h *accountingHandler) addAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	account, err := h.accounts.AddAccount(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to add account", slog.String("account_id", req.AccountID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(*account))
}

func (h *accountingHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.journal.GetAllEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponses(entries))
}

func (h *accountingHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind journal entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.journal.PostEntry(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to post journal entry", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *accountingHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.journal.GetEntry(c.Request.Context(), c.Param("journalEntryID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *accountingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOfDate := c.Query("as_of_date")

	rows, err := h.reporting.TrialBalance(c.Request.Context(), asOfDate)
	if err != nil {
		logger.Warn("Failed to generate trial balance", slog.String("as_of_date", asOfDate), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, asOfDate))
}

func (h *accountingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	report, err := h.reporting.IncomeStatement(c.Request.Context(), startDate, endDate)
	if err != nil {
		logger.Warn("Failed to generate income statement",
			slog.String("start_date", startDate),
			slog.String("end_date", endDate),
			slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report, startDate, endDate))
}

func (h *accountingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOfDate := c.Query("as_of_date")

	report, err := h.reporting.BalanceSheet(c.Request.Context(), asOfDate)
	if err != nil {
		logger.Warn("Failed to generate balance sheet", slog.String("as_of_date", asOfDate), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, asOfDate))
}
