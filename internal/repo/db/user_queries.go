package db

const userGetByIDQ = `
SELECT
	u.id,
	u.name,
	u.email,
	u.role,
	u.is_email_verified,
	u.created_at,
	u.updated_at
FROM users u
WHERE u.id = $1
`

const userGetByEmailQ = `
SELECT
    u.id,
    u.name,
    u.email,
    u.password,
    u.role,
	u.is_email_verified,
    u.created_at,
    u.updated_at
FROM users u
WHERE email = $1
`

const userCreateQ = `
INSERT INTO users (name, password, email, role)
VALUES ($1, $2, $3, $4)
RETURNING id
`

const userUpdatePasswordQ = `
UPDATE users
SET password = $1,
    updated_at = now()
WHERE id = $2
`

const userSetEmailVerifiedQ = `
UPDATE users
SET is_email_verified = true,
    updated_at = now()
WHERE id = $1
`
