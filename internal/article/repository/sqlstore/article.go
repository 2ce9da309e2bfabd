package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"laptopxplorer/internal/article"
	repo "laptopxplorer/internal/article/repository"
	"laptopxplorer/pkg/sqldb"
)

const articleSelect = `
	SELECT a.id, a.title, a.slug,
		COALESCE(a.laptop_id, ''), COALESCE(l.name, ''), COALESCE(l.slug, ''),
		a.author_name, a.author_bio, a.excerpt, a.content, a.read_time,
		a.published, a.featured, a.views, a.created_at, a.updated_at
	FROM articles a
	LEFT JOIN laptops l ON l.id = a.laptop_id`

func (r *implRepository) CreateArticle(ctx context.Context, opt repo.CreateArticleOptions) (article.Article, error) {
	const query = `
		INSERT INTO articles (
			id, title, slug, laptop_id, author_name, author_bio, excerpt, content,
			read_time, published, featured, views, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		id, opt.Title, opt.Slug, sqldb.NullString(opt.LaptopID), opt.AuthorName, opt.AuthorBio,
		opt.Excerpt, opt.Content, opt.ReadTime, opt.Published, opt.Featured, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateArticle"), err)
		if sqldb.IsUniqueViolation(err) {
			return article.Article{}, repo.ErrDuplicate
		}
		return article.Article{}, repo.ErrFailedToInsert
	}

	return r.GetOneArticle(ctx, repo.GetOneArticleOptions{Slug: opt.Slug})
}

func (r *implRepository) GetOneArticle(ctx context.Context, opt repo.GetOneArticleOptions) (article.Article, error) {
	query := articleSelect + " WHERE a.slug = ?"
	args := []any{opt.Slug}
	if opt.PublishedOnly {
		query += " AND a.published = ?"
		args = append(args, true)
	}

	articles, err := r.queryArticles(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneArticle"), err)
		return article.Article{}, repo.ErrFailedToGet
	}
	if len(articles) == 0 {
		return article.Article{}, nil
	}
	return articles[0], nil
}

func buildListQuery(opt repo.ListArticlesOptions) (string, []any) {
	var conditions []string
	var args []any
	if opt.PublishedOnly {
		conditions = append(conditions, "a.published = ?")
		args = append(args, true)
	}
	if opt.FeaturedOnly {
		conditions = append(conditions, "a.featured = ?")
		args = append(args, true)
	}
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// ListArticles returns a page of articles, newest first, and the total count.
func (r *implRepository) ListArticles(ctx context.Context, opt repo.ListArticlesOptions) ([]article.Article, int, error) {
	where, args := buildListQuery(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM articles a WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, r.db.Rebind(countQuery), args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListArticles"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY a.created_at DESC, a.id", articleSelect, where)
	if opt.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opt.Limit, max(0, opt.Offset))
	}

	articles, err := r.queryArticles(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListArticles"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return articles, total, nil
}

func (r *implRepository) IncrementViews(ctx context.Context, id string) error {
	const query = `UPDATE articles SET views = views + 1 WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementViews"), err)
		return repo.ErrFailedToIncrement
	}
	return nil
}

func (r *implRepository) queryArticles(ctx context.Context, query string, args ...any) ([]article.Article, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []article.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func scanArticle(rows *sql.Rows) (article.Article, error) {
	var a article.Article
	err := rows.Scan(
		&a.ID, &a.Title, &a.Slug,
		&a.LaptopID, &a.LaptopName, &a.LaptopSlug,
		&a.AuthorName, &a.AuthorBio, &a.Excerpt, &a.Content, &a.ReadTime,
		&a.Published, &a.Featured, &a.Views, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}
