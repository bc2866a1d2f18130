package sessions

const (
	querySchema = `
		CREATE TABLE IF NOT EXISTS ai_sessions (
			id            UUID PRIMARY KEY,
			task          TEXT NOT NULL,
			language      TEXT NOT NULL DEFAULT '',
			input_code    TEXT NOT NULL,
			output_result TEXT NOT NULL DEFAULT '',
			tokens_used   INTEGER NOT NULL DEFAULT 0,
			model         TEXT NOT NULL,
			status        TEXT NOT NULL,
			error         TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at  TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS ai_sessions_created_at_idx ON ai_sessions (created_at DESC)
	`

	queryStart = `
		INSERT INTO ai_sessions (id, task, language, input_code, model, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	queryComplete = `
		UPDATE ai_sessions
		SET status = $1,
		    output_result = $2,
		    tokens_used = $3,
		    completed_at = NOW()
		WHERE id = $4
	`

	queryFail = `
		UPDATE ai_sessions
		SET status = $1,
		    error = $2,
		    completed_at = NOW()
		WHERE id = $3
	`

	queryList = `
		SELECT id, task, language, input_code, output_result, tokens_used, model, status, error, created_at, completed_at
		FROM ai_sessions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	queryCount = `
		SELECT COUNT(*) FROM ai_sessions
	`

	queryGet = `
		SELECT id, task, language, input_code, output_result, tokens_used, model, status, error, created_at, completed_at
		FROM ai_sessions
		WHERE id = $1
	`
)
