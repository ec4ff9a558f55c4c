package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LavaJover/shvark-order-intake/internal/delivery/http/dto/order/request"
	"github.com/LavaJover/shvark-order-intake/internal/domain"
	orderdto "github.com/LavaJover/shvark-order-intake/internal/usecase/dto/order"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageWindow = 5

var templateFuncs = template.FuncMap{
	"chatLink":    chatLink,
	"rowAction":   rowAction,
	"handle":      handle,
	"statusClass": statusClass,
	"statusLabel": statusLabel,
	"upper":       strings.ToUpper,
	"date":        func(o *domain.Order) string { return o.CreatedAt.Format("2006-01-02") },
}

func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

type dashboardView struct {
	Page        *orderdto.OrdersPage
	Error       string
	Statuses    []domain.OrderStatus
	ShowingFrom int64
	ShowingTo   int64
	PrevURL     string
	NextURL     string
	Links       []pageLink
	ReturnQuery string
}

// GET /
func (h *OrderHandler) Dashboard(c *gin.Context) {
	page, err := h.dashboard.ListOrders(c.Request.Context(), pageParam(c), c.Query("search"))

	view := newDashboardView(page)
	if err != nil {
		_ = c.Error(err)
		view.Error = "Orders could not be loaded. Please try again later."
	}
	c.HTML(http.StatusOK, "orders.html", view)
}

// POST /orders/:id/status
func (h *OrderHandler) SubmitStatus(c *gin.Context) {
	var req request.UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("malformed status form", "order_id", c.Param("id"), "error", err.Error())
		c.Redirect(http.StatusSeeOther, returnURL(c))
		return
	}

	if _, err := h.dashboard.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.logger.Warn("status update from dashboard failed", "order_id", c.Param("id"), "error", err.Error())
	}
	c.Redirect(http.StatusSeeOther, returnURL(c))
}

// POST /orders/:id/delete
func (h *OrderHandler) SubmitDelete(c *gin.Context) {
	if _, err := h.dashboard.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Warn("delete from dashboard failed", "order_id", c.Param("id"), "error", err.Error())
	}
	c.Redirect(http.StatusSeeOther, returnURL(c))
}

func newDashboardView(page *orderdto.OrdersPage) dashboardView {
	view := dashboardView{
		Page:        page,
		Statuses:    domain.OrderStatuses,
		ReturnQuery: pageQuery(page.Page, page.Search),
	}

	if len(page.Orders) > 0 {
		view.ShowingFrom = int64(page.Page-1)*int64(page.PageSize) + 1
		view.ShowingTo = min(view.ShowingFrom+int64(len(page.Orders))-1, page.Total)
	}
	if page.Page > 1 {
		view.PrevURL = "/?" + pageQuery(page.Page-1, page.Search)
	}
	if page.Page < page.TotalPages {
		view.NextURL = "/?" + pageQuery(page.Page+1, page.Search)
	}

	for _, n := range pageNumbers(page.Page, page.TotalPages) {
		view.Links = append(view.Links, pageLink{
			Number:  n,
			URL:     "/?" + pageQuery(n, page.Search),
			Current: n == page.Page,
		})
	}
	return view
}

// pageNumbers returns a window of up to five page numbers centred on current.
func pageNumbers(current, total int) []int {
	count := min(pageWindow, total)
	start := max(1, min(total-pageWindow+1, current-2))

	numbers := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if n := start + i; n <= total {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

func pageQuery(page int, search string) string {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	if search != "" {
		values.Set("search", search)
	}
	return values.Encode()
}

// returnURL rebuilds the dashboard location the row action was posted from.
func returnURL(c *gin.Context) string {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return "/?" + pageQuery(page, strings.TrimSpace(c.Query("search")))
}

func handle(o *domain.Order) string {
	if o.TelegramUsername != nil && *o.TelegramUsername != "" {
		return "@" + strings.TrimPrefix(*o.TelegramUsername, "@")
	}
	return fmt.Sprintf("User %d", o.TelegramUserID)
}

// chatLink is marked safe because html/template rejects the tg: scheme.
func chatLink(o *domain.Order) template.URL {
	if o.TelegramUsername != nil && *o.TelegramUsername != "" {
		return template.URL("https://t.me/" + url.PathEscape(strings.TrimPrefix(*o.TelegramUsername, "@")))
	}
	return template.URL(fmt.Sprintf("tg://user?id=%d", o.TelegramUserID))
}

func rowAction(orderID, action, query string) template.URL {
	return template.URL("/orders/" + url.PathEscape(orderID) + "/" + action + "?" + query)
}

func statusClass(s domain.OrderStatus) string {
	switch s {
	case domain.StatusNew:
		return "badge-new"
	case domain.StatusInReview:
		return "badge-review"
	case domain.StatusApproved:
		return "badge-approved"
	case domain.StatusRejected:
		return "badge-rejected"
	}
	return "badge-unknown"
}

var statusLabels = map[domain.OrderStatus]string{
	domain.StatusNew:      "New",
	domain.StatusInReview: "In Review",
	domain.StatusApproved: "Approved",
	domain.StatusRejected: "Rejected",
}

func statusLabel(s domain.OrderStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
