package store

import (
	"database/sql"
	"encoding/json"
	"log"
	"sync"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/smradar/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultStore keeps built charts and the song index in sqlite. It is
// safe to use from several goroutines.
type DefaultStore struct {
	db *sql.DB
	mu sync.Mutex
}

func (s *DefaultStore) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return errors.Wrapf(err, "unable to open %v", path)
	}

	initStatement := `
	create table if not exists charts
	  (
		  sum text not null primary key,
		  chart blob
	  );
	create table if not exists songs
	  (
		  dir_name text not null,
		  file text not null,
		  title text,
		  bpm text,
		  timestamp text,
		  primary key (dir_name, file)
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create tables")
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultStore) Load(sum string) (*game.Chart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data []byte
	err := s.db.QueryRow("select chart from charts where sum = ?", sum).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false
	} else if nil != err {
		log.Println("unable to load chart", err)
		return nil, false
	}

	var chart game.Chart
	if err := json.Unmarshal(data, &chart); nil != err {
		log.Println("unable to unmarshal cached chart", err)
		return nil, false
	}
	return &chart, true
}

func (s *DefaultStore) Save(sum string, chart *game.Chart) {
	data, err := json.Marshal(chart)
	if nil != err {
		log.Println("unable to marshal chart", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec("insert or replace into charts(sum, chart) values(?, ?)", sum, data)
	if nil != err {
		log.Println("unable to save chart", err)
	}
}

func (s *DefaultStore) SaveSong(file string, song *game.Song) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		"insert or replace into songs(dir_name, file, title, bpm, timestamp) values(?, ?, ?, ?, ?)",
		song.DirName, file, song.Title, song.Bpm, song.Timestamp,
	)
	if nil != err {
		log.Println("unable to save song", err)
	}
}

func (s *DefaultStore) Songs() ([]SongEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	songs := []SongEntry{}
	rows, err := s.db.Query("select dir_name, file, title, bpm, timestamp from songs order by dir_name, file")
	if nil != err {
		return nil, errors.Wrap(err, "unable to load songs")
	}
	defer rows.Close()
	for rows.Next() {
		var e SongEntry
		if err := rows.Scan(&e.DirName, &e.File, &e.Title, &e.Bpm, &e.Timestamp); nil != err {
			return nil, errors.Wrap(err, "unable to read song")
		}
		songs = append(songs, e)
	}
	return songs, rows.Err()
}
