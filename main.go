package main

import (
	"log"
	"os"

	"git.lost.host/meutraa/smradar/internal/batch"
	"git.lost.host/meutraa/smradar/internal/config"
	"git.lost.host/meutraa/smradar/internal/game"
	"git.lost.host/meutraa/smradar/internal/parser"
	"git.lost.host/meutraa/smradar/internal/render"
	"git.lost.host/meutraa/smradar/internal/score"
	"git.lost.host/meutraa/smradar/internal/store"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}
	var scr score.Scorer = &score.DefaultScorer{}
	var r render.Renderer = render.NewRenderer(os.Stdout, *config.Color)

	p := &batch.Program{
		Parser:     psr,
		Scorer:     scr,
		Renderer:   r,
		Output:     *config.Output,
		Jobs:       int(*config.Jobs),
		ProbeAudio: *config.ProbeAudio,
		Quiet:      *config.Quiet,
	}

	if *config.Dump != "" {
		d, err := game.ParseDifficulty(*config.Dump)
		if nil != err {
			return err
		}
		p.Dump = &d
	}

	if *config.Database != "" {
		var st store.Store = &store.DefaultStore{}
		if err := st.Init(*config.Database); nil != err {
			return err
		}
		defer st.Deinit()
		p.Store = st
	}

	files, err := p.Find(*config.Directory)
	if nil != err {
		return err
	}
	if len(files) == 0 {
		log.Println("no .sm or .ssc files found in", *config.Directory)
	}
	return p.Run(files)
}
