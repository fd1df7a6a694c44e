package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"yordam/internal/application/ticket/usecases"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/shared/errors"
)

// init registers the priority and ticketstatus binding validators so the
// accepted values stay defined in one place, the value objects.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return vo.Priority(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
		return vo.TicketStatus(fl.Field().String()).IsValid()
	})
}

type AttachmentPayload struct {
	FileName string `json:"file_name" binding:"required,max=255"`
	FilePath string `json:"file_path" binding:"required,max=500"`
	FileSize int64  `json:"file_size" binding:"required,min=1"`
}

func (p *AttachmentPayload) toDomain() *ticket.Attachment {
	if p == nil {
		return nil
	}
	return &ticket.Attachment{
		FileName: p.FileName,
		FilePath: p.FilePath,
		FileSize: p.FileSize,
	}
}

type CreateTicketRequest struct {
	Title       string             `json:"title" binding:"required,max=200"`
	Description string             `json:"description" binding:"required"`
	SystemID    uint               `json:"system_id" binding:"required"`
	Priority    string             `json:"priority" binding:"omitempty,priority"`
	Attachment  *AttachmentPayload `json:"attachment"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		SystemID:    r.SystemID,
		Priority:    r.Priority,
		CreatorID:   creatorID,
		Attachment:  r.Attachment.toDomain(),
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,ticketstatus"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type RateTicketRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

type ReopenTicketRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type SendMessageRequest struct {
	Text       string             `json:"text" binding:"required"`
	Attachment *AttachmentPayload `json:"attachment"`
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid ticket id")
	}
	return uint(id), nil
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	query := usecases.ListTicketsQuery{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	var err error
	if query.SystemID, err = queryUint(c, "system_id"); err != nil {
		return query, err
	}
	if query.RegionID, err = queryUint(c, "region_id"); err != nil {
		return query, err
	}
	if query.CreatedFrom, err = queryDate(c, "from"); err != nil {
		return query, err
	}
	if query.CreatedTo, err = queryDate(c, "to"); err != nil {
		return query, err
	}

	query.Page, _ = strconv.Atoi(c.Query("page"))
	query.PageSize, _ = strconv.Atoi(c.Query("page_size"))
	return query, nil
}

func queryUint(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewBadRequestError("invalid " + name)
	}
	value := uint(parsed)
	return &value, nil
}

func queryDate(c *gin.Context, name string) (*time.Time, error) {
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

func parsePageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}

type QuickStatsResponse struct {
	Total      int64   `json:"total"`
	Unassigned int64   `json:"unassigned"`
	InProgress int64   `json:"in_progress"`
	Resolved   int64   `json:"resolved"`
	AvgRating  float64 `json:"avg_rating"`
}
