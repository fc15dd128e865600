package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/YokoReis/focus-flash-forge-23/store"
	"github.com/gin-gonic/gin"
)

// ActivityResourceIDKey lets a handler report the id of a resource it created,
// since creation routes carry no :id param.
const ActivityResourceIDKey = "activityResourceID"

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// routeActions maps "METHOD route-suffix" to the logged action
var routeActions = map[string]string{
	"POST /products":           models.ActionCreateProduct,
	"PATCH /products/:id":      models.ActionUpdateProduct,
	"PUT /products/:id":        models.ActionUpdateProduct,
	"DELETE /products/:id":     models.ActionDeleteProduct,
	"POST /products/:id/image": models.ActionUploadProductImage,
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records product mutations in the activity feed.
// Must be used AFTER AdminAuthMiddleware.
func ActivityLoggingMiddleware(st *store.Store, activity *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip GET requests - we only log non-GET (POST, PATCH, PUT, DELETE)
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		action := actionForRoute(c.Request.Method, c.FullPath())
		if action == "" {
			c.Next()
			return
		}

		// Fetch "before" object from the store (only for existing resources)
		resourceID := c.Param("id")
		var before *models.Product
		if resourceID != "" {
			if p, ok := st.GetProductByID(resourceID); ok {
				before = &p
			}
		}

		c.Next()

		if id, ok := c.Get(ActivityResourceIDKey); ok {
			if s, ok := id.(string); ok && s != "" {
				resourceID = s
			}
		}

		statusCode := c.Writer.Status()
		if statusCode < 200 || statusCode >= 300 {
			activity.LogActivity(services.LogActivityRequest{
				Action:       action,
				ResourceType: models.ResourceTypeProduct,
				ResourceID:   resourceID,
				ResourceName: productTitle(before),
				Status:       models.StatusFailed,
				ErrorMessage: "Request failed with status " + http.StatusText(statusCode),
				Context:      c,
			})
			log.Printf("[activity-logging] failed: %s %s - status %d", action, resourceID, statusCode)
			return
		}

		// Fetch "after" object from the store
		var after *models.Product
		if resourceID != "" {
			if p, ok := st.GetProductByID(resourceID); ok {
				after = &p
			}
		}

		name := productTitle(after)
		if name == "" {
			name = productTitle(before)
		}

		activity.LogActivity(services.LogActivityRequest{
			Action:       action,
			ResourceType: models.ResourceTypeProduct,
			ResourceID:   resourceID,
			ResourceName: name,
			Changes:      services.CreateChanges(optional(before), optional(after)),
			Status:       models.StatusSuccess,
			Context:      c,
		})
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// actionForRoute matches the tail of a registered route, e.g.
// "/api/v1/admin/products/:id" → "/products/:id".
func actionForRoute(method, fullPath string) string {
	for route, action := range routeActions {
		m, suffix, _ := strings.Cut(route, " ")
		if m == method && strings.HasSuffix(fullPath, suffix) {
			return action
		}
	}
	return ""
}

func productTitle(p *models.Product) string {
	if p == nil {
		return ""
	}
	return p.Title
}

// optional keeps a nil product as an untyped nil so it is omitted from the diff.
func optional(p *models.Product) any {
	if p == nil {
		return nil
	}
	return *p
}
