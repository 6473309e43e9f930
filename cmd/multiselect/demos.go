package main

import (
	"fmt"

	"multiselect"
)

// Each setup configures a fresh combo box for one demo scenario and
// reports whether the widget should close the popup after a toggle.

func setupBasic(box *multiselect.ComboBox) bool {
	box.SetPlaceholderText("Pick some fruits")
	_ = box.SetDisplayType(multiselect.TypeText)
	box.AddOptions(
		[]string{"Apple", "Banana", "Cherry", "Date", "Elderberry"},
		[]any{"apple", "banana", "cherry", "date", "elderberry"},
	)
	return false
}

func setupSelectAll(box *multiselect.ComboBox) bool {
	box.SetPlaceholderText("Pick any")
	_ = box.SetDisplayType(multiselect.TypeText)
	box.SetSelectAllEnabled(true)
	box.AddOptions([]string{"Apple", "Banana", "Orange", "Grape"}, nil)
	return false
}

func setupMaxSelection(box *multiselect.ComboBox) bool {
	box.SetPlaceholderText("Pick up to 2 fruits")
	_ = box.SetDisplayType(multiselect.TypeText)
	box.SetSelectAllEnabled(true)
	box.SetMaxSelectionCount(2)
	box.AddOptions([]string{"Apple", "Banana", "Cherry", "Date", "Elderberry"}, nil)
	return false
}

func setupSummary(box *multiselect.ComboBox) bool {
	box.SetPlaceholderText("Pick toppings")
	_ = box.SetDisplayType(multiselect.TypeText)
	_ = box.SetCountSummary(3, "")
	box.AddOptions([]string{"Cheese", "Mushrooms", "Onions", "Peppers", "Olives", "Basil"}, nil)
	return false
}

func setupLeading(box *multiselect.ComboBox) bool {
	box.SetPlaceholderText("Pick toppings")
	_ = box.SetDisplayType(multiselect.TypeText)
	_ = box.SetLeadingSummary(2, "")
	box.AddOptions([]string{"Cheese", "Mushrooms", "Onions", "Peppers", "Olives", "Basil"}, nil)
	return false
}

func setupBatch(box *multiselect.ComboBox) bool {
	box.SetPlaceholderText("Batch-loaded items")
	_ = box.SetDisplayType(multiselect.TypeText)
	box.BeginUpdate()
	for i := 1; i <= 20; i++ {
		box.AddOption(fmt.Sprintf("Item %d", i), i)
	}
	box.SetCheckedIndexes([]int{0, 4, 8})
	box.EndUpdate()
	return false
}

func setupFilter(box *multiselect.ComboBox) bool {
	box.SetPlaceholderText("Type / to filter")
	_ = box.SetDisplayType(multiselect.TypeText)
	box.SetSelectAllEnabled(true)
	box.BeginUpdate()
	for i := 1; i <= 100; i++ {
		box.AddOption(fmt.Sprintf("Record %03d", i), i)
	}
	box.EndUpdate()
	return false
}

func setupCloseOnSelect(box *multiselect.ComboBox) bool {
	box.SetPlaceholderText("Popup closes on toggle")
	_ = box.SetDisplayType(multiselect.TypeText)
	box.AddOptions([]string{"Red", "Green", "Blue"}, nil)
	return true
}
