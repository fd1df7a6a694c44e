package usecases

import "context"

type StatisticsReportExecutor interface {
	Execute(ctx context.Context, query StatisticsReportQuery) (*StatisticsReport, error)
}

type TechnicianPerformanceExecutor interface {
	Execute(ctx context.Context, query TechnicianPerformanceQuery) (*TechnicianPerformanceResult, error)
}

type OverviewExecutor interface {
	Execute(ctx context.Context, query OverviewQuery) (*Overview, error)
}

type DashboardExecutor interface {
	Execute(ctx context.Context, query DashboardQuery) (*DashboardStats, error)
}
