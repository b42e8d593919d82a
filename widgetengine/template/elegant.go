package template

// The elegant template predates the shared ordering policy and always
// rendered channels newest-first. Owners arranged their channel lists around
// that, so the reversed order is kept as a variant flag.
var elegantTemplate = Definition{
	ID:          "elegant",
	Name:        "Elegant",
	Description: "Serif typography, warm tones, channels in reverse order.",
	Variant: Variant{
		ClassPrefix:  "fcwe",
		IconSet:      "glyph",
		ReverseOrder: true,
	},
	HTML: `<div class="fcwe-root fcwe-pos-{{POSITION}}" id="{{CONTAINER_ID}}" data-widget-id="{{WIDGET_ID}}">
  <div class="fcwe-modal" style="{{MODAL_ALIGNMENT_STYLE}}">
    <div class="fcwe-modal-content" style="{{MODAL_CONTENT_POSITION_STYLE}}">
      <div class="fcwe-modal-header">
        <span class="fcwe-greeting">{{GREETING_MESSAGE}}</span>
        <button class="fcwe-close" type="button" aria-label="Close">&times;</button>
      </div>
      <div class="fcwe-divider"></div>
      {{VIDEO_MARKUP}}
      <div class="fcwe-channels" data-count="{{CHANNEL_COUNT}}">{{CHANNELS_MARKUP}}</div>
      <div class="fcwe-empty" style="display: {{EMPTY_STATE_DISPLAY}};">No contact channels configured yet.</div>
    </div>
  </div>
  <div class="fcwe-tooltip fcwe-tooltip-{{TOOLTIP_POSITION}}" style="{{TOOLTIP_POSITION_STYLE}}">{{TOOLTIP_TEXT}}</div>
  <button class="fcwe-button" type="button" aria-label="{{TOOLTIP_TEXT}}">{{BUTTON_CONTENT}}</button>
</div>`,
	CSS: `.fcwe-root {
  position: fixed;
  bottom: 20px;
  {{POSITION_STYLE}}
  z-index: 999999;
  font-family: Georgia, "Times New Roman", serif;
}
.fcwe-button {
  width: {{BUTTON_SIZE}}px;
  height: {{BUTTON_SIZE}}px;
  border-radius: 50%;
  border: 2px solid rgba(255, 255, 255, 0.65);
  cursor: pointer;
  background: {{BUTTON_COLOR}};
  color: #fff;
  display: flex;
  align-items: center;
  justify-content: center;
  box-shadow: 0 5px 16px rgba(60, 42, 33, 0.35);
  transition: transform 0.25s ease;
  overflow: hidden;
  padding: 0;
}
.fcwe-button:hover { transform: rotate(8deg) scale(1.05); }
.fcwe-glyph { font-size: {{ICON_SIZE}}px; line-height: 1; }
.fcwe-button-icon-img { width: {{ICON_SIZE}}px; height: {{ICON_SIZE}}px; object-fit: contain; }
.fcwe-button-video { width: 100%; height: 100%; object-fit: cover; border-radius: 50%; }
.fcwe-tooltip {
  position: absolute;
  {{TOOLTIP_DEFAULT_VISIBILITY}}
  background: #3f2d23;
  color: #f5efe6;
  padding: 6px 12px;
  border-radius: 3px;
  font-size: 13px;
  font-style: italic;
  white-space: nowrap;
  pointer-events: none;
  transition: opacity 0.2s ease;
}
.fcwe-root:hover .fcwe-tooltip { {{TOOLTIP_HOVER_VISIBILITY}} }
.fcwe-modal {
  position: fixed;
  inset: 0;
  display: none;
  align-items: flex-end;
  background: rgba(63, 45, 35, 0.3);
  z-index: 999998;
}
.fcwe-modal.fcwe-open { display: flex; }
.fcwe-modal-content {
  background: #faf6f0;
  border: 1px solid #e7dccb;
  border-radius: 6px;
  width: 320px;
  max-width: calc(100vw - 32px);
  max-height: 70vh;
  overflow-y: auto;
  box-shadow: 0 10px 36px rgba(63, 45, 35, 0.3);
}
.fcwe-modal-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 16px 18px 10px;
}
.fcwe-greeting { font-size: 16px; color: #3f2d23; }
.fcwe-divider {
  height: 1px;
  margin: 0 18px;
  background: linear-gradient(to right, transparent, #c8b79b, transparent);
}
.fcwe-close {
  border: none;
  background: none;
  font-size: 20px;
  line-height: 1;
  cursor: pointer;
  color: #a08c72;
  padding: 2px 6px;
}
.fcwe-close:hover { color: #3f2d23; }
.fcwe-channels {
  display: flex;
  flex-direction: column;
  gap: {{CHANNEL_GAP}}px;
  padding: 14px 18px;
}
.fcwe-channel {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 10px 14px;
  border-radius: 4px;
  color: #fff;
  text-decoration: none;
  cursor: pointer;
  font-size: 14px;
  letter-spacing: 0.02em;
  transition: filter 0.2s ease;
}
.fcwe-channel:hover { filter: saturate(1.2); }
.fcwe-channel-icon { display: inline-flex; align-items: center; font-size: 17px; }
.fcwe-channel-icon img { width: 19px; height: 19px; object-fit: contain; }
.fcwe-channel-label { flex: 1; }
.fcwe-group { position: relative; }
.fcwe-group-trigger {
  display: flex;
  align-items: center;
  gap: 12px;
  width: 100%;
  padding: 10px 14px;
  border: none;
  border-radius: 4px;
  color: #fff;
  cursor: pointer;
  font-size: 14px;
  font-family: inherit;
  letter-spacing: 0.02em;
  text-align: left;
}
.fcwe-caret { margin-left: auto; transition: transform 0.2s ease; }
.fcwe-group.fcwe-open .fcwe-caret { transform: rotate(180deg); }
.fcwe-dropdown {
  display: none;
  flex-direction: column;
  gap: 5px;
  margin-top: 6px;
  padding: 8px;
  border-radius: 4px;
  background: #f0e8da;
}
.fcwe-group.fcwe-open .fcwe-dropdown { display: flex; }
.fcwe-dropdown-item {
  display: flex;
  align-items: center;
  gap: 9px;
  padding: 8px 11px;
  border-radius: 3px;
  color: #3f2d23;
  font-size: 13px;
  cursor: pointer;
  text-decoration: none;
}
.fcwe-dropdown-item:hover { background: #e7dccb; }
.fcwe-empty {
  padding: 18px;
  text-align: center;
  color: #a08c72;
  font-size: 13px;
  font-style: italic;
}
.fcwe-video { padding: 12px 18px 0; }
.fcwe-video video { width: 100%; border-radius: 4px; display: block; }
.fcwe-video-top { display: flex; align-items: flex-start; }
.fcwe-video-center { display: flex; align-items: center; }
.fcwe-video-bottom { display: flex; align-items: flex-end; }
@media (max-width: 480px) {
  .fcwe-button { width: {{BUTTON_SIZE_MOBILE}}px; height: {{BUTTON_SIZE_MOBILE}}px; }
  .fcwe-glyph { font-size: {{ICON_SIZE_MOBILE}}px; }
  .fcwe-button-icon-img { width: {{ICON_SIZE_MOBILE}}px; height: {{ICON_SIZE_MOBILE}}px; }
  .fcwe-channels { gap: {{CHANNEL_GAP_MOBILE}}px; }
  .fcwe-modal-content { width: calc(100vw - 24px); }
}`,
	JS: `var root = document.getElementById('{{CONTAINER_ID}}');
if (!root) { return; }
var button = root.querySelector('.fcwe-button');
var modal = root.querySelector('.fcwe-modal');
var closeButton = root.querySelector('.fcwe-close');
var tooltipText = '{{TOOLTIP_TEXT_JS}}';
var openGroup = null;

function closeGroup() {
  if (openGroup) {
    openGroup.classList.remove('fcwe-open');
    openGroup = null;
  }
}

function toggleGroup(group) {
  if (openGroup === group) {
    closeGroup();
    return;
  }
  closeGroup();
  group.classList.add('fcwe-open');
  openGroup = group;
}

button.addEventListener('click', function () {
  modal.classList.toggle('fcwe-open');
  closeGroup();
});
if (tooltipText) { button.setAttribute('title', tooltipText); }
closeButton.addEventListener('click', function () {
  modal.classList.remove('fcwe-open');
  closeGroup();
});
modal.addEventListener('click', function (ev) {
  if (ev.target === modal) {
    modal.classList.remove('fcwe-open');
    closeGroup();
  }
});
document.addEventListener('keydown', function (ev) {
  if (ev.key === 'Escape') {
    modal.classList.remove('fcwe-open');
    closeGroup();
  }
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwe-url]'), function (el) {
  el.addEventListener('click', function (ev) {
    ev.preventDefault();
    window.{{OPENER_NAME}}(el.getAttribute('data-fcwe-url'));
  });
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwe-dropdown]'), function (trigger) {
  trigger.addEventListener('click', function (ev) {
    ev.stopPropagation();
    toggleGroup(trigger.closest('.fcwe-group'));
  });
});
document.addEventListener('click', function (ev) {
  if (openGroup && !openGroup.contains(ev.target)) {
    closeGroup();
  }
});`,
}
