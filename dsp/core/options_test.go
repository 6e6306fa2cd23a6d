package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(60))
	if cfg.SampleRate != 60 {
		t.Fatalf("sample rate = %v, want 60", cfg.SampleRate)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithSampleRate(-3), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
	if def.SampleRate != 1 {
		t.Fatalf("default sample rate = %v, want 1", def.SampleRate)
	}
}
