package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGames(t *testing.T) {
	t.Run("paginated catalog", func(t *testing.T) {
		router, mock, _ := setupRouter(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "games"`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "games"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
				AddRow(2, "Tetris").
				AddRow(5, "Doom"))

		w := doJSON(router, "GET", "/game", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var page PaginatedGameResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Data, 2)
		assert.Equal(t, "Tetris", page.Data[0].Title)
		assert.Equal(t, int64(2), page.Meta.TotalItems)
		assert.Equal(t, 1, page.Meta.CurrentPage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed paging falls back and the limit is capped", func(t *testing.T) {
		router, mock, _ := setupRouter(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "games"`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "games"`)).
			WithArgs(maxPageSize).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(2, "Tetris"))

		w := doJSON(router, "GET", "/game?page=zero&limit=500", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var page PaginatedGameResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 1, page.Meta.CurrentPage)
		assert.Equal(t, maxPageSize, page.Meta.PageSize)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty catalog", func(t *testing.T) {
		router, mock, _ := setupRouter(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "games"`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "games"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

		w := doJSON(router, "GET", "/game", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var page PaginatedGameResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Empty(t, page.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetGameByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mock, _ := setupRouter(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "games"`)).
			WithArgs(5, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "platform"}).
				AddRow(5, "Doom", "PC (Windows)"))

		w := doJSON(router, "GET", "/game/5", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var view GameResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, uint(5), view.ID)
		assert.Equal(t, "Doom", view.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		router, mock, _ := setupRouter(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "games"`)).
			WithArgs(999, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := doJSON(router, "GET", "/game/999", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
