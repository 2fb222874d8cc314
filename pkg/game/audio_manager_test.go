package game

import "testing"

func newLoadedAudioManager(t *testing.T) *AudioManager {
	t.Helper()
	manifestPath, root := writeManifest(t)
	rm := NewResourceManager(testAudioContext)
	rm.SetAssetRoot(root)
	if err := rm.LoadResourceConfig(manifestPath); err != nil {
		t.Fatal(err)
	}
	if err := rm.LoadAll(); err != nil {
		t.Fatal(err)
	}
	return NewAudioManager(rm, NewSettingsManager(nil))
}

func TestAudioManagerPlaySound(t *testing.T) {
	am := newLoadedAudioManager(t)

	tests := []struct {
		name    string
		soundID string
		enabled bool
		want    bool
	}{
		{"known sound", "SOUND_PEW", true, true},
		{"unknown sound", "SOUND_MISSING", true, false},
		{"sound disabled", "SOUND_PEW", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am.settingsManager.SetSoundEnabled(tt.enabled)
			if got := am.PlaySound(tt.soundID); got != tt.want {
				t.Errorf("PlaySound(%q) = %v, want %v", tt.soundID, got, tt.want)
			}
		})
	}
}

func TestAudioManagerToggles(t *testing.T) {
	am := newLoadedAudioManager(t)

	if !am.PlayMusic("MUSIC_LOOP") {
		t.Fatal("PlayMusic should start the loop")
	}
	if am.ToggleMusic() {
		t.Error("first toggle should disable music")
	}
	if am.currentMusic != nil {
		t.Error("disabling music should stop the current track")
	}
	if am.PlayMusic("MUSIC_LOOP") {
		t.Error("PlayMusic should refuse while disabled")
	}
	if !am.ToggleMusic() {
		t.Error("second toggle should enable music")
	}
	if am.currentMusicID != "MUSIC_LOOP" {
		t.Errorf("current track = %q, want MUSIC_LOOP", am.currentMusicID)
	}

	if am.ToggleSound() {
		t.Error("first sound toggle should disable sound")
	}
	if am.PlaySound("SOUND_PEW") {
		t.Error("sound should be muted after toggle")
	}
}

func TestNopSoundPlayer(t *testing.T) {
	var sp SoundPlayer = NopSoundPlayer{}
	if sp.PlaySound(SoundShoot) {
		t.Error("NopSoundPlayer should never report playback")
	}
}
