//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"
	"github.com/cwbudde/algo-zexplorer/internal/explorer"
	"github.com/cwbudde/algo-zexplorer/internal/plot"
)

var (
	session *explorer.Session
	funcs   []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		var opts []explorer.Option
		if len(args) > 0 && args[0].Type() == js.TypeObject {
			p := args[0]
			if v := p.Get("frequency"); v.Type() == js.TypeNumber {
				opts = append(opts, explorer.WithFrequency(v.Float()))
			}
			if v := p.Get("amplitude"); v.Type() == js.TypeNumber {
				opts = append(opts, explorer.WithAmplitude(v.Float()))
			}
		}
		session = explorer.NewSession(opts...)
		return js.Null()
	}))

	// tick takes the seconds elapsed since the previous animation frame.
	api.Set("tick", export(func(args []js.Value) any {
		if session == nil || !isNumber(args, 0) {
			return js.Null()
		}
		session.Tick(args[0].Float())
		return js.Null()
	}))

	api.Set("setFrequency", export(func(args []js.Value) any {
		if session == nil || !isNumber(args, 0) {
			return js.Null()
		}
		return session.SetFrequency(args[0].Float())
	}))

	api.Set("setAmplitude", export(func(args []js.Value) any {
		if session == nil || !isNumber(args, 0) {
			return js.Null()
		}
		return session.SetAmplitude(args[0].Float())
	}))

	api.Set("setCoefficient", export(func(args []js.Value) any {
		if session == nil || len(args) < 2 || args[0].Type() != js.TypeString || !isNumber(args, 1) {
			return js.Null()
		}
		if _, err := session.SetCoefficient(args[0].String(), args[1].Float()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setCoefficients", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 || args[0].Type() != js.TypeObject {
			return js.Null()
		}
		c := session.Snapshot().Coefficients
		for _, name := range diffeq.Names {
			if v := args[0].Get(name); v.Type() == js.TypeNumber {
				c, _ = c.With(name, v.Float())
			}
		}
		session.SetCoefficients(c)
		return js.Null()
	}))

	api.Set("togglePlaying", export(func(args []js.Value) any {
		if session == nil {
			return false
		}
		return session.Toggle()
	}))

	api.Set("reset", export(func(args []js.Value) any {
		if session == nil {
			return js.Null()
		}
		session.Reset()
		return js.Null()
	}))

	api.Set("snapshot", export(func(args []js.Value) any {
		if session == nil {
			return js.Null()
		}
		return snapshotObject(session.Snapshot())
	}))

	api.Set("analysis", export(func(args []js.Value) any {
		if session == nil {
			return js.Null()
		}
		a, err := session.Analysis()
		if err != nil {
			return err.Error()
		}
		obj := js.Global().Get("Object").New()
		obj.Set("equation", a.Equation)
		obj.Set("transferFunction", a.TransferFunction)
		obj.Set("poleRadius", a.PoleRadius)
		obj.Set("stable", a.Stable)
		obj.Set("probeGain", a.ProbeGain)
		obj.Set("probePhase", a.ProbePhase)
		obj.Set("impulse", float32Array(a.Impulse))
		obj.Set("responseMagnitude", float32Array(a.Response.Magnitude))
		obj.Set("responsePhase", float32Array(a.Response.Phase))
		obj.Set("inputPeak", a.InputPeak)
		obj.Set("outputTone", a.OutputTone)
		obj.Set("outputPeak", a.Output.Peak)
		obj.Set("outputRMS", a.Output.RMS)
		obj.Set("diverged", a.Output.Diverged())
		obj.Set("spectrum", float32Array(a.Spectrum.Magnitude))
		obj.Set("spectrumTone", a.SpectrumTone)
		return obj
	}))

	api.Set("ask", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 || args[0].Type() != js.TypeString {
			return js.Null()
		}
		if _, err := session.Ask(args[0].String()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("questions", export(func(args []js.Value) any {
		if session == nil {
			return js.Global().Get("Array").New(0)
		}
		return questionArray(session.Questions())
	}))

	api.Set("faq", export(func(args []js.Value) any {
		return questionArray(explorer.FAQ())
	}))

	api.Set("applications", export(func(args []js.Value) any {
		apps := explorer.Applications()
		arr := js.Global().Get("Array").New(len(apps))
		for i, a := range apps {
			obj := js.Global().Get("Object").New()
			obj.Set("title", a.Title)
			obj.Set("description", a.Description)
			arr.SetIndex(i, obj)
		}
		return arr
	}))

	api.Set("team", export(func(args []js.Value) any {
		team := explorer.Team()
		arr := js.Global().Get("Array").New(len(team))
		for i, m := range team {
			obj := js.Global().Get("Object").New()
			obj.Set("name", m.Name)
			obj.Set("role", m.Role)
			arr.SetIndex(i, obj)
		}
		return arr
	}))

	js.Global().Set("ZExplorer", api)
	select {}
}

func snapshotObject(snap explorer.Snapshot) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("time", snap.Time)
	obj.Set("playing", snap.Playing)
	obj.Set("frequency", snap.Frequency)
	obj.Set("amplitude", snap.Amplitude)
	obj.Set("generation", int(snap.Generation))
	obj.Set("state", snap.RevealState.String())
	obj.Set("revealed", snap.Frame.Len())
	obj.Set("equation", snap.Coefficients.String())
	obj.Set("oscillatorPath", plot.SVGPath(plot.OscillatorVertices(snap.Points, plot.OscillatorChart)))
	obj.Set("inputPath", plot.SVGPath(plot.SignalVertices(snap.Frame.X, plot.SignalChart)))
	obj.Set("outputPath", plot.SVGPath(plot.SignalVertices(snap.Frame.Y, plot.SignalChart)))
	return obj
}

func questionArray(qs []explorer.Question) js.Value {
	arr := js.Global().Get("Array").New(len(qs))
	for i, q := range qs {
		obj := js.Global().Get("Object").New()
		obj.Set("question", q.Question)
		obj.Set("answer", q.Answer)
		arr.SetIndex(i, obj)
	}
	return arr
}

func float32Array(v []float64) js.Value {
	arr := js.Global().Get("Float32Array").New(len(v))
	for i := range v {
		arr.SetIndex(i, v[i])
	}
	return arr
}

// isNumber reports whether args[i] exists and is a JS number. Float panics
// on anything else.
func isNumber(args []js.Value, i int) bool {
	return len(args) > i && args[i].Type() == js.TypeNumber
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
