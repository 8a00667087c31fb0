package db

const deviceCreateQ = `
INSERT INTO devices (owner_id, name, device_type, is_estate_level, is_on, metadata)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

const deviceGetByIDQ = `
SELECT
	id,
	owner_id,
	name,
	device_type,
	is_estate_level,
	is_on,
	metadata,
	created_at,
	updated_at
FROM devices
WHERE id = $1
`

const deviceGetForUpdateQ = deviceGetByIDQ + `
FOR UPDATE
`

const deviceListByOwnerQ = `
SELECT
	id,
	owner_id,
	name,
	device_type,
	is_estate_level,
	is_on,
	metadata,
	created_at,
	updated_at
FROM devices
WHERE owner_id = $1
ORDER BY created_at
`

const deviceListEstateQ = `
SELECT
	id,
	owner_id,
	name,
	device_type,
	is_estate_level,
	is_on,
	metadata,
	created_at,
	updated_at
FROM devices
WHERE is_estate_level = true
ORDER BY created_at
`

const deviceUpdateStateQ = `
UPDATE devices
SET is_on = $1,
    metadata = $2,
    updated_at = now()
WHERE id = $3
`

const deviceLogInsertQ = `
INSERT INTO device_logs (device_id, action, details)
VALUES ($1, $2, $3)
`

const deviceLogsListQ = `
SELECT id, device_id, action, details, created_at
FROM device_logs
WHERE device_id = $1
ORDER BY created_at DESC, id DESC
`
