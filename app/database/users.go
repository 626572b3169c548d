package database

import (
	"database/sql"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, role, is_active, created_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name,
		&user.Role, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(q DBTX, user *models.User) error {
	query := `INSERT INTO users (email, password, name, role, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  RETURNING id, created_at`

	return q.QueryRow(query, user.Email, user.Password, user.Name, user.Role).
		Scan(&user.ID, &user.CreatedAt)
}

func GetTeachers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, email, name, role, is_active, created_at
			  FROM users WHERE role = 'TEACHER' AND is_active = true ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.User
	for rows.Next() {
		t := &models.User{}
		if err := rows.Scan(&t.ID, &t.Email, &t.Name, &t.Role, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}
