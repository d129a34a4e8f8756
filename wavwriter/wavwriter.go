// This file is part of Zedcycle.
//
// Zedcycle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zedcycle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zedcycle.  If not, see <https://www.gnu.org/licenses/>.

package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/logger"
)

// SampleFreq is the sample rate of the rendered audio.
const SampleFreq = 44100

// Amplitude of the rendered square wave. Samples are sixteen bit signed.
const Amplitude = 0x2000

const bitDepth = 16

// Clock is the source of timestamps for level changes.
type Clock interface {
	Elapsed() clocks.HalfCycles
}

type edge struct {
	at    clocks.HalfCycles
	level bool
}

// WavWriter implements the allram.PortHandler interface.
type WavWriter struct {
	filename string
	clock    Clock

	// clock rate in MHz
	rate float64

	port uint8
	mask uint8

	level bool
	edges []edge
}

// New is the preferred method of initialisation for the WavWriter type. The
// beeper is the numbered bit of the low byte of the port address.
func New(filename string, clock Clock, rate float64, port uint8, bit int) (*WavWriter, error) {
	if rate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "clock rate must be positive")
	}
	if bit < 0 || bit > 7 {
		return nil, curated.Errorf("wavwriter: %v", "beeper bit must be between 0 and 7")
	}

	aw := &WavWriter{
		filename: filename,
		clock:    clock,
		rate:     rate,
		port:     port,
		mask:     0x01 << bit,
		edges:    make([]edge, 0),
	}

	return aw, nil
}

// In implements the allram.PortHandler interface. The beeper is write only
// so the floating bus value is returned.
func (aw *WavWriter) In(_ uint16) uint8 {
	return 0xff
}

// Out implements the allram.PortHandler interface.
func (aw *WavWriter) Out(port uint16, value uint8) {
	if uint8(port) != aw.port {
		return
	}

	level := value&aw.mask == aw.mask
	if level == aw.level {
		return
	}
	aw.level = level
	aw.edges = append(aw.edges, edge{at: aw.clock.Elapsed(), level: level})
}

// Transitions returns the number of level changes recorded so far.
func (aw *WavWriter) Transitions() int {
	return len(aw.edges)
}

// Render the recording from time zero to the end time as mono PCM data.
func (aw *WavWriter) Render(end clocks.HalfCycles) []int {
	n := int(end.Duration(aw.rate).Seconds() * SampleFreq)
	data := make([]int, n)

	var level bool
	var e int
	for i := range data {
		at := clocks.HalfCycles(float64(i) * aw.rate * 2000000 / SampleFreq)
		for e < len(aw.edges) && aw.edges[e].at <= at {
			level = aw.edges[e].level
			e++
		}
		if level {
			data[i] = Amplitude
		} else {
			data[i] = -Amplitude
		}
	}

	return data
}

// Close renders the recording up to the current time of the clock and writes
// it to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.Render(aw.clock.Elapsed()),
		SourceBitDepth: bitDepth,
	}

	// audio format 1 is uncompressed PCM
	enc := wav.NewEncoder(f, SampleFreq, bitDepth, 1, 1)

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(buf.Data), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
