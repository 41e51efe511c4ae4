package postgres

const createRun = `INSERT INTO mint_runs (network, contract_address, recipient, start_id, total_count, randomize, started_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const addAttempt = `INSERT INTO mint_attempts (run_id, token_id, kind, tx_hash, reason, block_number, gas_used, fee, attempted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, CAST($8::TEXT AS DECIMAL), $9)`

const finalizeRun = `UPDATE mint_runs
SET status = $2, attempted = $3, succeeded = $4, total_fee = CAST($5::TEXT AS DECIMAL), fatal_error = $6, finished_at = $7
WHERE id = $1`

const getRun = `SELECT id, network, contract_address, recipient, start_id, total_count, randomize, status,
	attempted, succeeded, total_fee::TEXT, fatal_error, started_at, finished_at
FROM mint_runs
WHERE id = $1`

const getAttemptsByRunID = `SELECT run_id, token_id, kind, tx_hash, reason, block_number, gas_used, fee::TEXT, attempted_at
FROM mint_attempts
WHERE run_id = $1
ORDER BY id`
