package postgres

const (
	queryLoadSave = `SELECT data FROM game_saves WHERE save_key = $1`

	queryUpsertSave = `
		INSERT INTO game_saves (save_key, data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (save_key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()
	`

	queryDeleteSave = `DELETE FROM game_saves WHERE save_key = $1`

	queryExistsSave = `SELECT EXISTS (SELECT 1 FROM game_saves WHERE save_key = $1)`
)
