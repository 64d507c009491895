package validate

import "testing"

func TestTrainTestSplit(t *testing.T) {
	train, test := TrainTestSplit(12, 0.25, 42)
	if len(test) != 3 {
		t.Errorf("expected 3 test indices, got %d", len(test))
	}
	if len(train) != 9 {
		t.Errorf("expected 9 train indices, got %d", len(train))
	}
	seen := map[int]bool{}
	for _, idx := range append(append([]int(nil), train...), test...) {
		if seen[idx] {
			t.Errorf("index %d appears twice", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 12 {
		t.Errorf("expected all 12 indices covered, got %d", len(seen))
	}
}

func TestTrainTestSplit_Deterministic(t *testing.T) {
	_, test1 := TrainTestSplit(12, 0.25, 42)
	_, test2 := TrainTestSplit(12, 0.25, 42)
	for i := range test1 {
		if test1[i] != test2[i] {
			t.Fatalf("same seed produced different splits: %v vs %v", test1, test2)
		}
	}
}

func TestKFold(t *testing.T) {
	folds := KFold(7, 3, 42)
	if len(folds) != 3 {
		t.Fatalf("expected 3 folds, got %d", len(folds))
	}
	seen := map[int]bool{}
	total := 0
	for _, fold := range folds {
		total += len(fold)
		for _, idx := range fold {
			if seen[idx] {
				t.Errorf("index %d in more than one fold", idx)
			}
			seen[idx] = true
		}
	}
	if total != 7 {
		t.Errorf("expected folds to cover 7 indices, got %d", total)
	}
}

func TestLeaveOneOut(t *testing.T) {
	folds := LeaveOneOut(5)
	if len(folds) != 5 {
		t.Fatalf("expected 5 folds, got %d", len(folds))
	}
	for i, fold := range folds {
		if len(fold) != 1 || fold[0] != i {
			t.Errorf("fold %d: expected singleton [%d], got %v", i, i, fold)
		}
	}
}

func TestComplement(t *testing.T) {
	got := Complement(5, []int{1, 3})
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestTake(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}}
	y := []float64{10, 20, 30}
	Xs, ys := Take(X, y, []int{2, 0})
	if Xs[0][0] != 3 || Xs[1][0] != 1 {
		t.Errorf("rows misgathered: %v", Xs)
	}
	if ys[0] != 30 || ys[1] != 10 {
		t.Errorf("targets misgathered: %v", ys)
	}
}
