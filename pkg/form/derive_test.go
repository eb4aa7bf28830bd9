package form

import "testing"

func TestFolderName(t *testing.T) {
	t.Parallel()

	got, err := FolderName("2025-06-15", "Banks o' Dee", "Forres Mechanics")
	if err != nil {
		t.Fatalf("FolderName returned error: %v", err)
	}
	if got != "250615_Banks_o_Dee_Forres_Mechanics" {
		t.Fatalf("unexpected folder name %q", got)
	}
}

func TestFolderNameCleansRunsAndSymbols(t *testing.T) {
	t.Parallel()

	got, err := FolderName("2024-01-02", "  Brechin   City ", "Fraserburgh F.C.")
	if err != nil {
		t.Fatalf("FolderName returned error: %v", err)
	}
	if got != "240102_Brechin_City_Fraserburgh_FC" {
		t.Fatalf("unexpected folder name %q", got)
	}
}

func TestFolderNameRejectsBadDate(t *testing.T) {
	t.Parallel()

	if _, err := FolderName("", "A", "B"); err == nil {
		t.Fatalf("expected error for empty date")
	}
	if _, err := FolderName("next tuesday", "A", "B"); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestGalleryTitle(t *testing.T) {
	t.Parallel()

	got := GalleryTitle("Banks o' Dee", "Buckie Thistle")
	if got != "Banks o' Dee v Buckie Thistle Gallery" {
		t.Fatalf("unexpected title %q", got)
	}
}
