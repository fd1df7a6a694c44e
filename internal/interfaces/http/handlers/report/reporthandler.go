package report

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yordam/internal/application/report/usecases"
	"yordam/internal/interfaces/http/middleware"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type ReportHandler struct {
	statisticsUC  usecases.StatisticsReportExecutor
	performanceUC usecases.TechnicianPerformanceExecutor
	overviewUC    usecases.OverviewExecutor
	dashboardUC   usecases.DashboardExecutor
	logger        logger.Interface
}

func NewReportHandler(
	statisticsUC usecases.StatisticsReportExecutor,
	performanceUC usecases.TechnicianPerformanceExecutor,
	overviewUC usecases.OverviewExecutor,
	dashboardUC usecases.DashboardExecutor,
	logger logger.Interface,
) *ReportHandler {
	return &ReportHandler{
		statisticsUC:  statisticsUC,
		performanceUC: performanceUC,
		overviewUC:    overviewUC,
		dashboardUC:   dashboardUC,
		logger:        logger,
	}
}

// Statistics handles GET /reports/statistics
func (h *ReportHandler) Statistics(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.statisticsUC.Execute(c.Request.Context(), usecases.StatisticsReportQuery{
		Actor: middleware.AccessFrom(c),
		From:  from,
		To:    to,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Performance handles GET /reports/performance
func (h *ReportHandler) Performance(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.performanceUC.Execute(c.Request.Context(), usecases.TechnicianPerformanceQuery{
		Actor: middleware.AccessFrom(c),
		From:  from,
		To:    to,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Rows)
}

// Overview handles GET /reports/overview
func (h *ReportHandler) Overview(c *gin.Context) {
	result, err := h.overviewUC.Execute(c.Request.Context(), usecases.OverviewQuery{
		Actor: middleware.AccessFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Dashboard handles GET /dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.DashboardQuery{
		Actor: middleware.AccessFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parsePeriod(c *gin.Context) (*time.Time, *time.Time, error) {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errors.NewBadRequestError("invalid " + name + ", expected YYYY-MM-DD")
	}
	return &parsed, nil
}
