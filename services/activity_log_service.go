package services

import (
	"log"
	"sync"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultActivityCapacity = 200

// ActivityLogService keeps the most recent admin actions in memory and mirrors each
// one to the process log.
type ActivityLogService struct {
	mu       sync.RWMutex
	entries  []models.ActivityLog
	capacity int
	now      func() time.Time
}

// NewActivityLogService creates a feed holding at most capacity entries
func NewActivityLogService(capacity int) *ActivityLogService {
	if capacity <= 0 {
		capacity = defaultActivityCapacity
	}
	return &ActivityLogService{capacity: capacity, now: time.Now}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	Action       string         // ActionCreateProduct, ActionAdminLogin, etc.
	ResourceType string         // ResourceTypeProduct or ResourceTypeSession
	ResourceID   string         // product id, when there is one
	ResourceName string         // product title
	Changes      map[string]any // {before: {...}, after: {...}}
	Status       string         // StatusSuccess or StatusFailed
	ErrorMessage string         // Error details if failed
	Context      *gin.Context   // For IP and User-Agent extraction
}

// LogActivity records an admin action. It never fails the request.
func (s *ActivityLogService) LogActivity(req LogActivityRequest) {
	if req.Status == "" {
		req.Status = models.StatusSuccess
	}
	client := utils.DescribeClient(req.Context)

	entry := models.ActivityLog{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Changes:      req.Changes,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    client.IPAddress,
		UserAgent:    client.UserAgent,
		DeviceType:   client.DeviceType,
		Browser:      client.Browser,
		OS:           client.OS,
		CreatedAt:    s.now().UTC(),
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	if over := len(s.entries) - s.capacity; over > 0 {
		s.entries = append([]models.ActivityLog(nil), s.entries[over:]...)
	}
	s.mu.Unlock()

	log.Printf("[activity-log] %s %s: %s/%s/%s from %s (%s, %s)",
		req.Status, req.Action, req.ResourceType, req.ResourceID, req.ResourceName,
		client.IPAddress, client.Browser, client.OS)
}

// Recent returns up to limit entries, newest first, optionally filtered by action.
func (s *ActivityLogService) Recent(limit int, action string) []models.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.ActivityLog{}
	for i := len(s.entries) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		if action != "" && s.entries[i].Action != action {
			continue
		}
		out = append(out, s.entries[i])
	}
	return out
}

// CreateChanges builds the before/after diff payload
func CreateChanges(before, after any) map[string]any {
	return map[string]any{
		"before": before,
		"after":  after,
	}
}
