package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/smradar/internal/game"
)

// GetChart returns the Easy chart of Simfile as it is written out.
func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal([]byte(data), &chart); nil != err {
		return nil, err
	}
	return &chart, nil
}

// Simfile has an Easy and a Hard dance-single chart and a dance-double
// chart that is not built. The tempo doubles at beat 8 and the chart
// stops for half a second at beat 4.
const Simfile = `#TITLE:Test Song;
#ARTIST:Test Artist;
#MUSIC:test.ogg;
#BANNER:test-bn.png;
#OFFSET:-0.050;
#BPMS:0.000=120.000,
8.000=240.000;
#STOPS:4.000=0.500;

//---------------dance-single - ----------------
#NOTES:
     dance-single:
     :
     Easy:
     3:
     0.1,0.2,0.3,0.4,0.5:
1000
0100
0010
0001
,  // measure 1
2000
0000
3000
0000
,  // measure 2
1100
0000
0000
M000
;
//---------------dance-double - ----------------
#NOTES:
     dance-double:
     :
     Hard:
     9:
     0,0,0,0,0:
10000000
00000000
00000000
00000000
;
//---------------dance-single - ----------------
#NOTES:
     dance-single:
     :
     Hard:
     8:
     0,0,0,0,0:
1000
0100
1000
0100
0010
0001
0010
0001
;
`

// SimfileSsc has a Challenge chart with its own tempo and a Beginner chart
// using the song tempo.
const SimfileSsc = `#VERSION:0.83;
#TITLE:Test Song SSC;
#MUSIC:test.mp3;
#BANNER:bn.png;
#OFFSET:0;
#BPMS:0.000=150.000;
#STOPS:;
#DISPLAYBPM:150;
//---------------dance-single - ----------------
#NOTEDATA:;
#STEPSTYPE:dance-single;
#DIFFICULTY:Challenge;
#METER:12;
#BPMS:0.000=200.000;
#NOTES:
1000
0000
0000
0000
;
#NOTEDATA:;
#STEPSTYPE:dance-single;
#DIFFICULTY:Beginner;
#METER:1;
#NOTES:
0001
0000
0000
0000
;
`

const data = `{
  "info": {
    "chart_type": "DanceSingle",
    "difficulty": "Easy",
    "level": 3,
    "max_combo": 7,
    "stream": 20,
    "voltage": 17,
    "air": 31,
    "freeze": 47,
    "chaos": 0
  },
  "content": {
    "stream": [
      {"arrows": [{"direction": "left", "arrow_type": "normal", "end": 0, "end_time": 0}], "color": "red", "offset": 0, "time": 0},
      {"arrows": [{"direction": "down", "arrow_type": "normal", "end": 0, "end_time": 0}], "color": "red", "offset": 48, "time": 0.5},
      {"arrows": [{"direction": "up", "arrow_type": "normal", "end": 0, "end_time": 0}], "color": "red", "offset": 96, "time": 1},
      {"arrows": [{"direction": "right", "arrow_type": "normal", "end": 0, "end_time": 0}], "color": "red", "offset": 144, "time": 1.5},
      {"arrows": [{"direction": "left", "arrow_type": "freeze", "end": 288, "end_time": 3.5}], "color": "red", "offset": 192, "time": 2},
      {"arrows": [{"direction": "left", "arrow_type": "normal", "end": 0, "end_time": 0}, {"direction": "down", "arrow_type": "normal", "end": 0, "end_time": 0}], "color": "red", "offset": 384, "time": 4.5},
      {"arrows": [{"direction": "left", "arrow_type": "mine", "end": 0, "end_time": 0}], "color": "red", "offset": 528, "time": 5.25}
    ],
    "stream_info": [],
    "gimmick": {
      "soflan": [{"division": 0, "bpm": 120}, {"division": 2, "bpm": 240}],
      "stop": [{"division": 1, "time": 0.5}]
    }
  }
}`
