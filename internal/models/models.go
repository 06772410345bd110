package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Post struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Link         string `json:"link" db:"link"`
	AuthorID     int64  `json:"authorId" db:"author_id"`
	CreationDate Date   `json:"creationDate" db:"creation_date"`
}

type Comment struct {
	ID           int64  `json:"id" db:"id"`
	AuthorID     int64  `json:"authorId" db:"author_id"`
	Content      string `json:"content" db:"content"`
	CreationDate Date   `json:"creationDate" db:"creation_date"`
	PostID       int64  `json:"postId" db:"post_id"`
}

type Like struct {
	ID     int64 `json:"id" db:"id"`
	UserID int64 `json:"userId" db:"user_id"`
	PostID int64 `json:"postId" db:"post_id"`
}

type TablesStats struct {
	Tables   int `json:"countTables"`
	Users    int `json:"users"`
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
	Likes    int `json:"likes"`
}

// Date is a calendar day stored in a DATE column and rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

func Today() Date {
	return NewDate(time.Now())
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	t, err := time.Parse(`"`+DateLayout+`"`, string(data))
	if err != nil {
		return fmt.Errorf("неверный формат даты: %w", err)
	}
	*d = NewDate(t)
	return nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewDate(v)
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	case nil:
		*d = Date{}
	default:
		return fmt.Errorf("неподдерживаемый тип даты: %T", value)
	}
	return nil
}

func (d *Date) parse(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("неверный формат даты: %w", err)
	}
	*d = NewDate(t)
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}
