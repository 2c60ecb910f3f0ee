package mysql

const createCorrectionsSQL = `
CREATE TABLE IF NOT EXISTS wage_corrections (
  city_slug   VARCHAR(64)  NOT NULL,
  field       VARCHAR(32)  NOT NULL,
  recorded    DECIMAL(8,2) NOT NULL,
  suggested   DECIMAL(8,2) NOT NULL,
  source      VARCHAR(128) NOT NULL DEFAULT '',
  note        VARCHAR(255) NOT NULL DEFAULT '',
  updated_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (city_slug, field)
)
`

const upsertCorrectionSQL = `
INSERT INTO wage_corrections
  (city_slug, field, recorded, suggested, source, note)
VALUES
  (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  recorded   = VALUES(recorded),
  suggested  = VALUES(suggested),
  source     = VALUES(source),
  note       = VALUES(note),
  updated_at = CURRENT_TIMESTAMP
`

const listCorrectionsSQL = `
SELECT city_slug, field, recorded, suggested, source, note
FROM wage_corrections
WHERE city_slug = ?
ORDER BY field
`
