package rewrite

import "testing"

func TestNestingArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth        int
		bulletIndent int
		numberIndent int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{2, 2, 3},
		{3, 4, 6},
		{4, 6, 9},
	}

	for _, tt := range tests {
		if got := BulletIndent(tt.depth); got != tt.bulletIndent {
			t.Errorf("BulletIndent(%d) = %d, want %d", tt.depth, got, tt.bulletIndent)
		}
		if got := NumberIndent(tt.depth); got != tt.numberIndent {
			t.Errorf("NumberIndent(%d) = %d, want %d", tt.depth, got, tt.numberIndent)
		}
		if tt.depth == 0 {
			continue
		}
		if got := BulletDepth(tt.bulletIndent); got != tt.depth {
			t.Errorf("BulletDepth(%d) = %d, want %d", tt.bulletIndent, got, tt.depth)
		}
		if got := NumberDepth(tt.numberIndent); got != tt.depth {
			t.Errorf("NumberDepth(%d) = %d, want %d", tt.numberIndent, got, tt.depth)
		}
	}
}

func TestNestingDepth_RoundsDown(t *testing.T) {
	t.Parallel()

	if got := BulletDepth(3); got != 2 {
		t.Errorf("BulletDepth(3) = %d, want 2", got)
	}
	if got := NumberDepth(5); got != 2 {
		t.Errorf("NumberDepth(5) = %d, want 2", got)
	}
}
