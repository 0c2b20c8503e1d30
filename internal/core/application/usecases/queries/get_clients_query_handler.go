package queries

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ClientSummary is the flat read model for one client.
type ClientSummary struct {
	ID        int64
	Name      string
	Email     string
	BirthDate time.Time
	Address   string
	CreatedAt time.Time
}

// GetClientsQueryResponse is one page of clients plus the unpaged total.
type GetClientsQueryResponse struct {
	Items    []ClientSummary
	Total    int64
	Page     int
	PageSize int
}

// GetClientsQueryHandler lists clients straight from the database.
type GetClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetClientsQueryHandler creates a handler for client listing queries.
func NewGetClientsQueryHandler(db *gorm.DB) GetClientsQueryHandler {
	return GetClientsQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by name.
func (h GetClientsQueryHandler) Handle(ctx context.Context, query GetClientsQuery) (GetClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetClientsQueryResponse{}, err
	}

	var conditions []string
	var args []any
	if query.Name() != "" {
		conditions = append(conditions, "name ILIKE ?")
		args = append(args, "%"+query.Name()+"%")
	}
	if query.Email() != "" {
		conditions = append(conditions, "email ILIKE ?")
		args = append(args, "%"+query.Email()+"%")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM clients`+where, args...).
		Scan(&total).Error; err != nil {
		return GetClientsQueryResponse{}, err
	}

	items := make([]ClientSummary, 0)

	listArgs := append(args, query.PageSize(), (query.Page()-1)*query.PageSize())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			birth_date,
			address,
			created_at
		FROM clients`+where+`
		ORDER BY name, id
		LIMIT ? OFFSET ?
	`, listArgs...).Rows()
	if err != nil {
		return GetClientsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ClientSummary

		err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.Email,
			&item.BirthDate,
			&item.Address,
			&item.CreatedAt,
		)
		if err != nil {
			return GetClientsQueryResponse{}, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return GetClientsQueryResponse{}, err
	}

	return GetClientsQueryResponse{
		Items:    items,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}
