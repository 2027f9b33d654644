package main

import (
	"log"

	"github.com/gotk3/gotk3/gtk"
)

// showErrorDialog shows err in a modal GTK dialog and waits for it to be
// closed. Without a usable display it does nothing; err has already been logged.
func showErrorDialog(err error) {
	if initErr := gtk.InitCheck(nil); initErr != nil {
		log.Println("cannot show error dialog:", initErr)
		return
	}

	dialog := gtk.MessageDialogNew(
		nil,
		gtk.DIALOG_MODAL,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"%s",
		err.Error(),
	)
	dialog.SetTitle(windowTitle)
	dialog.SetKeepAbove(true)

	// Shader logs are long; let them be copied out.
	messageArea, areaErr := dialog.GetMessageArea()
	if areaErr != nil {
		log.Println(areaErr)
	} else {
		messageArea.GetChildren().Foreach(func(item interface{}) {
			if widget, ok := item.(*gtk.Widget); ok {
				l, err := gtk.WidgetToLabel(widget)
				if err != nil {
					return
				}
				l.SetSelectable(true)
			}
		})
	}

	dialog.Run()
	dialog.Destroy()
}
