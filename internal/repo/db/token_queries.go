package db

const refreshCreateQ = `
INSERT INTO refresh_tokens (id, user_id, token_hash, token_hint, device_info, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

const refreshCandidatesQ = `
SELECT id, user_id, token_hash, token_hint, device_info, expires_at, revoked, created_at
FROM refresh_tokens
WHERE token_hint = $1 AND revoked = false
`

const refreshRevokeQ = `
UPDATE refresh_tokens
SET revoked = true
WHERE id = $1 AND revoked = false
`

const refreshRevokeAllQ = `
UPDATE refresh_tokens
SET revoked = true
WHERE user_id = $1 AND revoked = false
`

const verifyCreateQ = `
INSERT INTO email_verification_tokens (id, user_id, token_hash, token_hint, expires_at)
VALUES ($1, $2, $3, $4, $5)
`

const verifyCandidatesQ = `
SELECT id, user_id, token_hash, token_hint, expires_at, used, created_at
FROM email_verification_tokens
WHERE token_hint = $1 AND used = false
`

const verifyMarkUsedQ = `
UPDATE email_verification_tokens
SET used = true
WHERE id = $1 AND used = false
`

const resetCreateQ = `
INSERT INTO password_reset_tokens (id, user_id, token_hash, token_hint, expires_at)
VALUES ($1, $2, $3, $4, $5)
`

const resetCandidatesQ = `
SELECT id, user_id, token_hash, token_hint, expires_at, used, created_at
FROM password_reset_tokens
WHERE token_hint = $1 AND used = false
`

const resetMarkUsedQ = `
UPDATE password_reset_tokens
SET used = true
WHERE id = $1 AND used = false
`
